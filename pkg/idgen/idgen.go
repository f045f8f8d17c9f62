package idgen

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Generator stamps unique order and invoice numbers from a snowflake node.
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("init snowflake node: %w", err)
	}
	return &Generator{node: node}, nil
}

func (g *Generator) OrderNumber() string {
	return fmt.Sprintf("ORD-%s-%d", time.Now().Format("20060102"), g.node.Generate().Int64())
}

func (g *Generator) InvoiceNumber() string {
	return fmt.Sprintf("INV-%d-%d", time.Now().Year(), g.node.Generate().Int64())
}
