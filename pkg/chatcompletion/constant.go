package chatcompletion

const (
	// ZhipuBaseURL is the Zhipu BigModel (GLM) OpenAI-compatible endpoint.
	ZhipuBaseURL = "https://open.bigmodel.cn/api/paas/v4"

	// ZhipuDefaultModel is the reasoning model the coach was tuned against.
	ZhipuDefaultModel = "glm-z1-air"

	// DeepSeekBaseURL is the DeepSeek API endpoint.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// DeepSeekDefaultModel is the default DeepSeek chat model.
	DeepSeekDefaultModel = "deepseek-chat"

	defaultTimeoutSeconds = 60
)

// Finish reasons that mean the provider withheld the answer on policy grounds.
const (
	FinishReasonSensitive     = "sensitive"
	FinishReasonContentFilter = "content_filter"
)

// ZhipuSensitiveCode is the error code Zhipu returns when the prompt itself is rejected.
const ZhipuSensitiveCode = "1301"
