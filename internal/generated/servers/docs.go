//go:generate go tool oapi-codegen -generate types,server,spec -package servers -o server.gen.go openapi.yml

package servers
