package ctdf

type ServiceTier string

const (
	ServiceTierExpress ServiceTier = "EXPRESS"
	ServiceTierLocal               = "LOCAL"
	ServiceTierUnknown             = "UNKNOWN"
)
