package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一ID, 整体随时间递增
func GenID() int64 {
	return node.Generate().Int64()
}
