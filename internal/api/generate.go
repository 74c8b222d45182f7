// Package api holds the HTTP contract of the imgsplit server: the models
// and chi routing generated from openapi.yaml.
package api

//go:generate go tool oapi-codegen -config cfg.yaml openapi.yaml
