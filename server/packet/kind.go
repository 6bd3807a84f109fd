package packet

import "fmt"

// Direction is the direction a packet travels in relative to the upstream server.
type Direction uint8

const (
	// Clientbound packets are sent by the upstream server.
	Clientbound Direction = iota
	// Serverbound packets are sent to the upstream server.
	Serverbound
)

func (d Direction) String() string {
	if d == Clientbound {
		return "clientbound"
	}
	return "serverbound"
}

// Kind is a logical upstream packet kind. Its value is the ID the packet uses until the server
// sends its protocol sync.
type Kind int32

const (
	KindProtocolSync Kind = iota + 1
	KindTransaction
	KindLogin
	KindDisconnect
	KindPlayer
	KindMessage
	KindPlayerPosition
	KindZone
	KindChunkColumn
	KindPlaceBlock
	KindBreakBlock
	KindInteractBlock
	KindBlockReplace
	KindPlaySound2D
	KindPlaySound3D
	KindSlotInteract
	KindContainerSync
	KindBlockEntityContainerSync
	KindBlockEntityScreen
	KindBlockEntityData
)

const namePrefix = "finalforeach.cosmicreach.networking.netty.packets."

var kindNames = map[Kind]string{
	KindProtocolSync:             namePrefix + "meta.ProtocolSyncPacket",
	KindTransaction:              namePrefix + "meta.TransactionPacket",
	KindLogin:                    namePrefix + "meta.LoginPacket",
	KindDisconnect:               namePrefix + "meta.DisconnectPacket",
	KindPlayer:                   namePrefix + "PlayerPacket",
	KindMessage:                  namePrefix + "MessagePacket",
	KindPlayerPosition:           namePrefix + "PlayerPositionPacket",
	KindZone:                     namePrefix + "ZonePacket",
	KindChunkColumn:              namePrefix + "ChunkColumnPacket",
	KindPlaceBlock:               namePrefix + "blocks.PlaceBlockPacket",
	KindBreakBlock:               namePrefix + "blocks.BreakBlockPacket",
	KindInteractBlock:            namePrefix + "blocks.InteractBlockPacket",
	KindBlockReplace:             namePrefix + "blocks.BlockReplacePacket",
	KindPlaySound2D:              namePrefix + "sounds.PlaySound2DPacket",
	KindPlaySound3D:              namePrefix + "sounds.PlaySound3DPacket",
	KindSlotInteract:             namePrefix + "SlotInteractPacket",
	KindContainerSync:            namePrefix + "ContainerSyncPacket",
	KindBlockEntityContainerSync: namePrefix + "blocks.BlockEntityContainerSyncPacket",
	KindBlockEntityScreen:        namePrefix + "blocks.BlockEntityScreenPacket",
	KindBlockEntityData:          namePrefix + "blocks.BlockEntityDataPacket",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// kinds lists the kinds that travel in each direction.
var kinds = [2][]Kind{
	Clientbound: {
		KindProtocolSync, KindTransaction, KindDisconnect, KindPlayer, KindMessage, KindPlayerPosition,
		KindZone, KindChunkColumn, KindBlockReplace, KindPlaySound2D, KindPlaySound3D, KindContainerSync,
		KindBlockEntityContainerSync, KindBlockEntityScreen, KindBlockEntityData,
	},
	Serverbound: {
		KindTransaction, KindLogin, KindMessage, KindPlayerPosition, KindPlaceBlock, KindBreakBlock,
		KindInteractBlock, KindSlotInteract, KindContainerSync, KindBlockEntityContainerSync,
	},
}

// Name returns the canonical name of the kind.
func (k Kind) Name() string {
	return kindNames[k]
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name[len(namePrefix):]
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// KindByName returns the kind registered under the canonical name passed.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns the kinds travelling in the direction passed.
func Kinds(d Direction) []Kind {
	return kinds[d]
}
