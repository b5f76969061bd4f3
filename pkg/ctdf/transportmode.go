package ctdf

type TransportMode string

//goland:noinspection GoUnusedConst
const (
	TransportModeWalk     TransportMode = "WALK"
	TransportModeRail                   = "RAIL"
	TransportModeBus                    = "BUS"
	TransportModeRidehail               = "RIDEHAIL"
	TransportModeUnknown                = "UNKNOWN"
)
