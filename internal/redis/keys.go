package redisx

const ns = "voyago:v1"

func ChannelBookingsChanged() string {
	return ns + ":bookings:changed"
}
