package domain

// Car types
const (
	CarTypeDiesel       = "diesel"
	CarTypeGasoline     = "gasoline"
	CarTypeElectric     = "electric"
	CarTypeHybrid       = "hybrid"
	CarTypePlugInHybrid = "plugin_hybrid"
	CarTypeUnknown      = "unknown"
)

// Gearbox types
const (
	GearboxManual    = "manual"
	GearboxAutomatic = "automatic"
)

// Fuel policies
const (
	FuelPolicyLikeForLike = "likeForLike"
	FuelPolicyFreeTank    = "freeTank"
	FuelPolicyFullToFull  = "fullToFull"
	FuelPolicyFullToEmpty = "fullToEmpty"
)

// Car ranges
const (
	CarRangeMini    = "mini"
	CarRangeMidi    = "midi"
	CarRangeMaxi    = "maxi"
	CarRangeScooter = "scooter"
)

// Multimedia equipment
const (
	MultimediaTouchscreen  = "touchscreen"
	MultimediaBluetooth    = "bluetooth"
	MultimediaAndroidAuto  = "androidAuto"
	MultimediaAppleCarPlay = "appleCarPlay"
)

// Values accepted by the mileage and availability filters
const (
	MileageLimited   = "limited"
	MileageUnlimited = "unlimited"

	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

// Sentinel meaning "no constraint" for numeric filters
const NoConstraint = -1

// Seats filter value meaning "5 seats or more"
const (
	SeatsFiveOrMoreFilter = 6
	SeatsFiveOrMore       = 5
)

// Time format constants
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)

// Search pagination
const (
	DefaultPageSize = 30
	MaxPageSize     = 100
)

// Supplier pricing bounds
const (
	MinPriceChangeRate   = -100
	MaxPriceChangeRate   = 1000
	MinMinimumRentalDays = 1
)
