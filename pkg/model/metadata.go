package model

// Checkout session metadata keys linking a Stripe payment to a pledge
const (
	MetadataCampaignID   = "campaignId"
	MetadataBackerID     = "backerId"
	MetadataPledgeTierID = "pledgeTierId"
)
