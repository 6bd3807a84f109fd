package packet

// ProtocolVersion is the protocol version of Java Edition 1.21.
const ProtocolVersion = 767

// GameVersion is the game version advertised in the server list.
const GameVersion = "1.21"

// Handshake state.
const (
	IDHandshake int32 = 0x00
)

// Status state.
const (
	IDStatusRequest  int32 = 0x00
	IDStatusResponse int32 = 0x00
	IDPingRequest    int32 = 0x01
	IDPongResponse   int32 = 0x01
)

// Login state.
const (
	IDLoginDisconnect   int32 = 0x00
	IDLoginSuccess      int32 = 0x02
	IDLoginStart        int32 = 0x00
	IDLoginAcknowledged int32 = 0x03
)

// Configuration state.
const (
	IDConfigDisconnect        int32 = 0x02
	IDFinishConfiguration     int32 = 0x03
	IDConfigKeepAlive         int32 = 0x04
	IDRegistryData            int32 = 0x07
	IDUpdateTags              int32 = 0x0d
	IDClientInformation       int32 = 0x00
	IDConfigPluginMessage     int32 = 0x02
	IDFinishConfigurationAck  int32 = 0x03
	IDConfigKeepAliveResponse int32 = 0x04
)

// Play state, clientbound.
const (
	IDAddEntity           int32 = 0x01
	IDBlockUpdate         int32 = 0x09
	IDPlayDisconnect      int32 = 0x1d
	IDGameEvent           int32 = 0x22
	IDKeepAlive           int32 = 0x26
	IDLevelChunkWithLight int32 = 0x27
	IDLogin               int32 = 0x2b
	IDPing                int32 = 0x35
	IDPlayerInfoRemove    int32 = 0x3d
	IDPlayerInfoUpdate    int32 = 0x3e
	IDPlayerPosition      int32 = 0x40
	IDRemoveEntities      int32 = 0x42
	IDSetChunkCacheCenter int32 = 0x54
	IDSystemChat          int32 = 0x6c
	IDTabList             int32 = 0x6d
	IDTeleportEntity      int32 = 0x70
)

// Play state, serverbound.
const (
	IDChatCommand       int32 = 0x04
	IDChatMessage       int32 = 0x06
	IDKeepAliveResponse int32 = 0x18
	IDMovePlayerPos     int32 = 0x1a
	IDMovePlayerPosRot  int32 = 0x1b
	IDMovePlayerRot     int32 = 0x1c
	IDPong              int32 = 0x27
)

// EntityTypePlayer is the registry ID of the player entity type.
const EntityTypePlayer = 128

// GameEventLevelChunksLoadStart tells the client to start waiting for chunks.
const GameEventLevelChunksLoadStart = 13

// GameModeCreative ...
const GameModeCreative = 1

const (
	PlayerInfoAddPlayer      byte = 0x01
	PlayerInfoUpdateGameMode byte = 0x04
	PlayerInfoUpdateListed   byte = 0x08
)
