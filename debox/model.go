package debox

// Object names understood by the DeBox robot message endpoints.
const (
	ObjectNameCommand = "RCD:Command"
	ObjectNameGraphic = "RCD:Graphic"
	ObjectNameText    = "RC:TxtMsg"
)

type MessageRequest struct {
	ToUserID   string `json:"to_user_id"`
	ObjectName string `json:"object_name"`
	Message    string `json:"message"`
}

type GraphicMessageRequest struct {
	ToUserID   string `json:"to_user_id"`
	ObjectName string `json:"object_name"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Message    string `json:"message"`
	Href       string `json:"href"`
}

// GroupMessageRequest covers both group kinds. For text messages Message
// repeats Content and Href is empty; for graphic messages Message carries the
// image URL.
type GroupMessageRequest struct {
	ToUserID   string `json:"to_user_id"`
	GroupID    string `json:"group_id"`
	ObjectName string `json:"object_name"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Message    string `json:"message"`
	Href       string `json:"href"`
}
