package util

import (
	"encoding/json"

	clientpacket "github.com/cooldogedev/prism/client/packet"
)

// Status is the server list entry sent in response to a status request.
type Status struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int32  `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
	} `json:"players"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	EnforcesSecureChat bool `json:"enforcesSecureChat"`
}

// JSON ...
func (s Status) JSON() string {
	data, _ := json.Marshal(s)
	return string(data)
}

type StatusProvider struct {
	motd string
}

func NewStatusProvider(motd string) *StatusProvider {
	return &StatusProvider{motd: motd}
}

func (s *StatusProvider) ServerStatus(playerCount int, maxPlayers int) Status {
	var status Status
	status.Version.Name = clientpacket.GameVersion
	status.Version.Protocol = clientpacket.ProtocolVersion
	status.Players.Online = playerCount
	status.Players.Max = maxPlayers
	status.Description.Text = s.motd
	return status
}
