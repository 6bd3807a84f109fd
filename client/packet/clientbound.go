package packet

import (
	"encoding/json"

	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/cooldogedev/prism/mapping"
	"github.com/google/uuid"
)

// Overworld is the only dimension the proxy tells the client about.
const Overworld = "minecraft:overworld"

// LoginSuccess completes the login state.
func LoginSuccess(id uuid.UUID, name string) pk.Packet {
	return pk.Marshal(IDLoginSuccess,
		pk.UUID(id),
		pk.String(name),
		pk.VarInt(0),
		pk.Boolean(true),
	)
}

// LoginDisconnect disconnects a client that has not finished logging in.
func LoginDisconnect(reason string) pk.Packet {
	text, _ := json.Marshal(map[string]string{"text": reason})
	return pk.Marshal(IDLoginDisconnect, pk.String(text))
}

// RegistryData sends a single registry with all of its entries.
func RegistryData(r mapping.Registry) pk.Packet {
	fields := []pk.FieldEncoder{pk.Identifier(r.Name), pk.VarInt(len(r.Entries))}
	for _, entry := range r.Entries {
		fields = append(fields, pk.Identifier(entry.Name), pk.Boolean(entry.Data != nil))
		if entry.Data != nil {
			fields = append(fields, NBT{V: entry.Data})
		}
	}
	return pk.Marshal(IDRegistryData, fields...)
}

// UpdateTags sends the tags of every registry.
func UpdateTags(registries []mapping.TagRegistry) pk.Packet {
	fields := []pk.FieldEncoder{pk.VarInt(len(registries))}
	for _, registry := range registries {
		fields = append(fields, pk.Identifier(registry.Name), pk.VarInt(len(registry.Tags)))
		for _, tag := range registry.Tags {
			fields = append(fields, pk.Identifier(tag.Name), pk.VarInt(len(tag.Entries)))
			for _, id := range tag.Entries {
				fields = append(fields, pk.VarInt(id))
			}
		}
	}
	return pk.Marshal(IDUpdateTags, fields...)
}

// FinishConfiguration asks the client to switch to the play state.
func FinishConfiguration() pk.Packet {
	return pk.Marshal(IDFinishConfiguration)
}

// JoinGame holds the fields of the play state login packet the proxy does not hard code.
type JoinGame struct {
	EntityID     int32
	MaxPlayers   int32
	ViewDistance int32
}

// Login starts the play state.
func Login(g JoinGame) pk.Packet {
	return pk.Marshal(IDLogin,
		pk.Int(g.EntityID),
		pk.Boolean(false), // hardcore
		pk.VarInt(1),
		pk.Identifier(Overworld),
		pk.VarInt(g.MaxPlayers),
		pk.VarInt(g.ViewDistance),
		pk.VarInt(g.ViewDistance), // simulation distance
		pk.Boolean(false),         // reduced debug info
		pk.Boolean(true),          // respawn screen
		pk.Boolean(false),         // limited crafting
		pk.VarInt(0),              // dimension type
		pk.Identifier(Overworld),
		pk.Long(0), // hashed seed
		pk.UnsignedByte(GameModeCreative),
		pk.Byte(-1),       // previous game mode
		pk.Boolean(false), // debug
		pk.Boolean(false), // flat
		pk.Boolean(false), // death location
		pk.VarInt(0),      // portal cooldown
		pk.Boolean(false), // enforces secure chat
	)
}

// TabList sets the header and footer of the player list.
func TabList(header, footer string) pk.Packet {
	return pk.Marshal(IDTabList, Text(header), Text(footer))
}

// PlayerInfo is a player list entry.
type PlayerInfo struct {
	UUID     uuid.UUID
	Name     string
	GameMode int32
	Listed   bool
}

// PlayerInfoUpdate adds entries to the player list. actions is a combination of the PlayerInfo* flags.
func PlayerInfoUpdate(actions byte, entries ...PlayerInfo) pk.Packet {
	fields := []pk.FieldEncoder{pk.Byte(actions), pk.VarInt(len(entries))}
	for _, entry := range entries {
		fields = append(fields, pk.UUID(entry.UUID))
		if actions&PlayerInfoAddPlayer != 0 {
			fields = append(fields, pk.String(entry.Name), pk.VarInt(0))
		}
		if actions&PlayerInfoUpdateGameMode != 0 {
			fields = append(fields, pk.VarInt(entry.GameMode))
		}
		if actions&PlayerInfoUpdateListed != 0 {
			fields = append(fields, pk.Boolean(entry.Listed))
		}
	}
	return pk.Marshal(IDPlayerInfoUpdate, fields...)
}

// PlayerInfoRemove removes entries from the player list.
func PlayerInfoRemove(ids ...uuid.UUID) pk.Packet {
	fields := []pk.FieldEncoder{pk.VarInt(len(ids))}
	for _, id := range ids {
		fields = append(fields, pk.UUID(id))
	}
	return pk.Marshal(IDPlayerInfoRemove, fields...)
}

// PlayerPosition teleports the client player to an absolute position.
func PlayerPosition(x, y, z float64, yaw, pitch float32, teleportID int32) pk.Packet {
	return pk.Marshal(IDPlayerPosition,
		pk.Double(x),
		pk.Double(y),
		pk.Double(z),
		pk.Float(yaw),
		pk.Float(pitch),
		pk.Byte(0), // flags
		pk.VarInt(teleportID),
	)
}

// GameEvent ...
func GameEvent(event byte, value float32) pk.Packet {
	return pk.Marshal(IDGameEvent, pk.UnsignedByte(event), pk.Float(value))
}

// SystemChat shows a line in the chat.
func SystemChat(text string) pk.Packet {
	return pk.Marshal(IDSystemChat, Text(text), pk.Boolean(false))
}

// AddEntity spawns a player entity at the origin. Its position follows with the next TeleportEntity.
func AddEntity(entityID int32, id uuid.UUID, entityType int32) pk.Packet {
	return pk.Marshal(IDAddEntity,
		pk.VarInt(entityID),
		pk.UUID(id),
		pk.VarInt(entityType),
		pk.Double(0),
		pk.Double(0),
		pk.Double(0),
		pk.Angle(0), // pitch
		pk.Angle(0), // yaw
		pk.Angle(0), // head yaw
		pk.VarInt(0),
		pk.Short(0),
		pk.Short(0),
		pk.Short(0),
	)
}

// RemoveEntities ...
func RemoveEntities(ids ...int32) pk.Packet {
	fields := []pk.FieldEncoder{pk.VarInt(len(ids))}
	for _, id := range ids {
		fields = append(fields, pk.VarInt(id))
	}
	return pk.Marshal(IDRemoveEntities, fields...)
}

// TeleportEntity moves an entity. yaw and pitch are encoded as angle bytes.
func TeleportEntity(entityID int32, x, y, z float64, yaw, pitch int8) pk.Packet {
	return pk.Marshal(IDTeleportEntity,
		pk.VarInt(entityID),
		pk.Double(x),
		pk.Double(y),
		pk.Double(z),
		pk.Angle(yaw),
		pk.Angle(pitch),
		pk.Boolean(false), // on ground
	)
}

// BlockUpdate sets a single block to the state ID passed.
func BlockUpdate(x, y, z int32, state int32) pk.Packet {
	return pk.Marshal(IDBlockUpdate,
		pk.Position{X: int(x), Y: int(y), Z: int(z)},
		pk.VarInt(state),
	)
}

// LevelChunkWithLight sends a full chunk column. chunk writes everything following the packet ID.
func LevelChunkWithLight(chunk pk.FieldEncoder) pk.Packet {
	return pk.Marshal(IDLevelChunkWithLight, chunk)
}

// SetChunkCacheCenter moves the centre of the client's loaded area.
func SetChunkCacheCenter(x, z int32) pk.Packet {
	return pk.Marshal(IDSetChunkCacheCenter, pk.VarInt(x), pk.VarInt(z))
}

// KeepAlive ...
func KeepAlive(id int64) pk.Packet {
	return pk.Marshal(IDKeepAlive, pk.Long(id))
}

// ConfigKeepAlive ...
func ConfigKeepAlive(id int64) pk.Packet {
	return pk.Marshal(IDConfigKeepAlive, pk.Long(id))
}

// Ping asks the client to answer with a Pong carrying the same ID.
func Ping(id int32) pk.Packet {
	return pk.Marshal(IDPing, pk.Int(id))
}

// Disconnect disconnects a client in the play state.
func Disconnect(reason string) pk.Packet {
	return pk.Marshal(IDPlayDisconnect, Text(reason))
}

// ConfigDisconnect disconnects a client in the configuration state.
func ConfigDisconnect(reason string) pk.Packet {
	return pk.Marshal(IDConfigDisconnect, Text(reason))
}

// StatusResponse answers a status request with the JSON document passed.
func StatusResponse(status string) pk.Packet {
	return pk.Marshal(IDStatusResponse, pk.String(status))
}

// PongResponse answers a status ping.
func PongResponse(payload int64) pk.Packet {
	return pk.Marshal(IDPongResponse, pk.Long(payload))
}
