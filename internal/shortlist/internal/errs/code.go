package errs

var (
	SystemError            = ErrorCode{Code: 508001, Msg: "系统错误"}
	InvalidCriteria        = ErrorCode{Code: 508002, Msg: "筛选标准不合法"}
	CriteriaNotConfigured  = ErrorCode{Code: 508003, Msg: "该岗位尚未配置筛选标准"}
	GenerationInProgress   = ErrorCode{Code: 508004, Msg: "该岗位的榜单正在生成中"}
	NoExistingResults      = ErrorCode{Code: 508005, Msg: "该岗位还没有榜单，请先生成"}
	ResultNotFound         = ErrorCode{Code: 508006, Msg: "评估结果不存在"}
	InvalidManualScore     = ErrorCode{Code: 508007, Msg: "人工分必须在 0 到 100 之间"}
	InsufficientPermission = ErrorCode{Code: 508008, Msg: "无权执行该操作"}
	JobNotFound            = ErrorCode{Code: 508009, Msg: "岗位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
