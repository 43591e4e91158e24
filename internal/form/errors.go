package form

import "errors"

var (
	// ErrInvalidMode 多规格模式下规格列表为空（初始化失败，必须上抛）
	ErrInvalidMode = errors.New("multi-variant mode requires a non-empty variant list")
	// ErrRowIndexOutOfRange 行下标越界（调用方与行存储状态不同步）
	ErrRowIndexOutOfRange = errors.New("row index out of range")
	// ErrUnknownField 未知表单字段
	ErrUnknownField = errors.New("unknown form field")
	// ErrFieldNotEditable 推导字段或携带字段不允许直接编辑
	ErrFieldNotEditable = errors.New("field is not editable")
)
