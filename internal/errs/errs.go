// Package errs 定义跨层共享的错误类别哨兵
// 业务代码通过 fmt.Errorf("...: %w", errs.ErrXxx) 包装，
// handler 层通过 errors.Is 映射为 HTTP 状态码
package errs

import "errors"

var (
	// ErrInvalidArgument 必填字段缺失或为空
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound ID 无法解析到实体
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists 直接创建/重命名时名称冲突
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict 唯一约束竞争且重试后仍未解决
	ErrConflict = errors.New("conflict")
	// ErrDependencyFailure 外部 OCR / 文本生成管道失败或输出不可用
	ErrDependencyFailure = errors.New("dependency failure")
)
