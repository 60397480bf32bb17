// Package docs holds the Swagger 2.0 document served under /swagger.
// It mirrors the handler annotations; rebuild it from them with go generate.
package docs

//go:generate swag init --parseInternal --dir ../cmd,../internal/handlers,../internal/models --generalInfo main.go --output . --outputTypes go

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cadastro": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [
                    {
                        "description": "Registration payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.SignUpRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "string"}},
                    "401": {"description": "email already registered", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Returns the bearer token as the raw response body.",
                "consumes": ["application/json"],
                "produces": ["text/plain"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.SignInRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "token", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/registros": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "All records of the authenticated user, in insertion order.",
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "List records",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Record"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Stores a record dated today (DD/MM) and returns all of the user's records.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Create record",
                "parameters": [
                    {
                        "description": "Record payload",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreateRecordRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Record"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/registros/stream": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "WebSocket that pushes the caller's record list on connect and every interval (?interval=2s or ?interval_ms=2000, max 10s).",
                "tags": ["records"],
                "summary": "Stream records",
                "responses": {}
            }
        },
        "/usuario": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Profile of the authenticated user. Credential material is never included.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CreateRecordRequest": {
            "type": "object",
            "properties": {
                "descricao": {"type": "string", "example": "Mercado"},
                "valor": {"type": "number", "example": -42.5}
            }
        },
        "handlers.SignInRequest": {
            "type": "object",
            "required": ["email", "senha"],
            "properties": {
                "email": {"type": "string", "example": "maria@example.com"},
                "senha": {"type": "string", "example": "s3nha"}
            }
        },
        "handlers.SignUpRequest": {
            "type": "object",
            "required": ["confirmaSenha", "email", "nome", "senha"],
            "properties": {
                "confirmaSenha": {"type": "string", "example": "s3nha"},
                "email": {"type": "string", "example": "maria@example.com"},
                "nome": {"type": "string", "example": "Maria"},
                "senha": {"type": "string", "example": "s3nha"}
            }
        },
        "models.Record": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "data": {"type": "string"},
                "descricao": {"type": "string"},
                "idUsuario": {"type": "integer"},
                "nome": {"type": "string"},
                "valor": {"type": "number"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "integer"},
                "email": {"type": "string"},
                "nome": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MyWallet API",
	Description:      "Expense tracking: registration, login and per-user financial records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
