// Package docs holds the swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Fixed payload confirming the API process is serving requests. No dependency is checked.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "root"
                ],
                "summary": "API acknowledgment",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RootResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports the app, database and cache status. Degradation is reported in the body; the status code is always 200.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Dependency health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthStatus"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.HealthStatus": {
            "type": "object",
            "properties": {
                "app": {
                    "type": "string",
                    "example": "healthy"
                },
                "cache": {
                    "type": "string",
                    "example": "unhealthy: dial tcp 10.0.0.3:6379: connect: connection refused"
                },
                "db": {
                    "type": "string",
                    "example": "healthy"
                }
            }
        },
        "dto.RootResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "DevBox API is running"
                },
                "status": {
                    "type": "string",
                    "example": "success"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DevBox API",
	Description:      "Liveness of the API and of its database and cache dependencies",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
