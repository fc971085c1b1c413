package paymentdto

type RecordPaymentInput struct {
	CampaignID   string
	InfluencerID string
	Amount       float64
	Method       string
}
