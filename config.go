package main

import "github.com/kelseyhightower/envconfig"

type ConfigData struct {
	HTTPPort          int    `envconfig:"HTTP_PORT" default:"3001"`
	TemplatePath      string `envconfig:"TEMPLATE_PATH" default:"templates"`
	StaticPath        string `envconfig:"STATIC_PATH" default:"static"`
	EchartsAssetsHost string `envconfig:"ECHARTS_ASSETS_HOST" default:"https://go-echarts.github.io/go-echarts-assets/assets/"`
	Debugging         bool   `envconfig:"DEBUG" default:"false"`
}

func loadConfig() (*ConfigData, error) {
	var config ConfigData
	if err := envconfig.Process("finboard", &config); err != nil {
		return nil, err
	}
	return &config, nil
}
