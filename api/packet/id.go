package packet

const (
	IDConnectionRequest uint32 = iota
	IDConnectionResponse
	IDKick
	IDMessage
)
