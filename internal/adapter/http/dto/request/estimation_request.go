package request

// CreateEstimationRequest is the multipart form payload for estimation
// intake. Image parts travel separately under the "images" field; gin binds
// only the text fields here.
type CreateEstimationRequest struct {
	Type              string `form:"type" binding:"required"`
	FullName          string `form:"fullName" binding:"required"`
	Email             string `form:"email" binding:"required"`
	Phone             string `form:"phone" binding:"required"`
	Brand             string `form:"brand" binding:"required"`
	Model             string `form:"model" binding:"required"`
	Trim              string `form:"trim"`
	Year              int    `form:"year" binding:"required"`
	Description       string `form:"description"`
	PreferredLanguage string `form:"preferredLanguage" binding:"required"`
	ContactMethod     string `form:"contactMethod" binding:"required"`
}

type MarkAsSeenRequest struct {
	EstimationID string `json:"estimationId" binding:"required"`
	SeenBy       string `json:"seenBy" binding:"required"`
}

type ReplyRequest struct {
	EstimationID string `json:"estimationId" binding:"required"`
	ReplyBy      string `json:"replyBy" binding:"required"`
	ReplyMessage string `json:"replyMessage" binding:"required"`
}
