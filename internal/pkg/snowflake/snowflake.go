package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// 业务线编号，决定 ID 里的 APPID 段
const (
	AppCandidate uint = 0
	AppJob       uint = 1
	AppShortlist uint = 2
)

type Generator interface {
	Generate(appid uint) (ID, error)
}

// MultiAppGenerator 一个节点为多条业务线各持有一个 snowflake node，
// 生成的 ID 可以反解出业务线编号。
type MultiAppGenerator struct {
	nodes syncx.Map[uint, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxApp  uint = 31
)

var (
	ErrExceedNode = errors.New("node 编号超出限制")
	ErrExceedApp  = errors.New("app 数量超出限制")
	ErrUnknownApp = errors.New("未知的 app")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit APPID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

func NewMultiAppGenerator(nodeId uint, apps uint) (*MultiAppGenerator, error) {
	g := &MultiAppGenerator{}
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if apps > maxApp+1 {
		return nil, fmt.Errorf("%w", ErrExceedApp)
	}
	for i := 0; i < int(apps); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(uint(i), n)
	}
	return g, nil
}

type ID int64

func (g *MultiAppGenerator) Generate(appid uint) (ID, error) {
	n, ok := g.nodes.Load(appid)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownApp)
	}
	return ID(n.Generate()), nil
}

func (f ID) AppID() uint {
	node := snowflake.ID(f).Node()
	return uint(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
