package contentdto

type CreateContentInput struct {
	CampaignID string
	Title      string
	Body       string
	ProductIDs []string
}

type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
)

type ReviewContentInput struct {
	ContentID string
	Action    ReviewAction
	Feedback  string
}

type TrackInteractionInput struct {
	ContentID string
	ProductID string
	SessionID string
	Type      string
}
