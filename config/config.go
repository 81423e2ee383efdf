package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Server   *Server         `json:"server" yaml:"server"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Feed     *Feed           `json:"feed" yaml:"feed"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// Feed 信息流相关配置
type Feed struct {
	PageSize        int `json:"page_size" yaml:"page_size"`                 // 每页条数, 默认 10
	CommentPageSize int `json:"comment_page_size" yaml:"comment_page_size"` // 评论每页条数, 默认 10
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if yaml.Unmarshal(content, &conf) != nil {
		panic(fmt.Sprintf("解析 config.yaml 读取错误: %v", err))
	}

	if conf.Feed == nil {
		conf.Feed = &Feed{}
	}
	if conf.Feed.PageSize <= 0 {
		conf.Feed.PageSize = 10
	}
	if conf.Feed.CommentPageSize <= 0 {
		conf.Feed.CommentPageSize = 10
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
