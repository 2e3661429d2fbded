// Package docs registers the OpenAPI description of the item showcase API
// with swag, for the Swagger UI served under /swagger/. The document follows
// the handler annotations; regenerate with swag init -g cmd/api/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "summary": "Read root",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/items/{item_id}": {
            "get": {
                "summary": "Read item",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "item_id", "in": "path", "required": true, "type": "integer", "description": "The ID of item to get. Snapshots 2 and 3 require 1 <= item_id <= 1000."},
                    {"name": "item-query", "in": "query", "required": true, "type": "string", "minLength": 3, "maxLength": 50, "pattern": "^fixedquery$", "description": "Awesome Item. This Item is absolutely awesome. Deprecated."},
                    {"name": "size", "in": "query", "required": false, "type": "number", "exclusiveMinimum": true, "minimum": 0, "exclusiveMaximum": true, "maximum": 10.5}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "summary": "Update item",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "item_id", "in": "path", "required": true, "type": "integer"},
                    {"name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Item"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemUpdate"}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/items/": {
            "post": {
                "summary": "Create item",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Item"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Item"}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/icecream/{icecream_name}": {
            "get": {
                "summary": "Get ice cream",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "icecream_name", "in": "path", "required": true, "type": "string", "enum": ["strawberry", "blueberry", "pistachio"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/files/{file_path}": {
            "get": {
                "summary": "Get file",
                "description": "file_path may contain slashes.",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "file_path", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/user/": {
            "post": {
                "summary": "Create user (snapshot 2, /v2/user/)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserIn"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserOut"}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/images/multiple/": {
            "post": {
                "summary": "Create multiple images",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "images", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/Image"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Image"}}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/index-weights/": {
            "post": {
                "summary": "Create index weights",
                "description": "Keys must be integers.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "weights", "in": "body", "required": true, "schema": {"type": "object", "additionalProperties": {"type": "number"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "number"}}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/offers/": {
            "post": {
                "summary": "Create offer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "offer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Offer"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Offer"}},
                    "422": {"description": "Validation Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Image": {
            "type": "object",
            "required": ["url", "name"],
            "properties": {
                "url": {"type": "string", "format": "uri"},
                "name": {"type": "string"}
            }
        },
        "Item": {
            "type": "object",
            "required": ["name", "price"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string", "maxLength": 300, "x-nullable": true},
                "price": {"type": "number"},
                "tax": {"type": "number", "x-nullable": true},
                "is_offer": {"type": "boolean", "x-nullable": true},
                "tags": {"type": "array", "items": {"type": "string"}},
                "images": {"type": "array", "items": {"$ref": "#/definitions/Image"}, "x-nullable": true}
            },
            "example": {
                "name": "Foo",
                "description": "A very nice Item",
                "price": 35.4,
                "tax": 3.2
            }
        },
        "ItemUpdate": {
            "type": "object",
            "properties": {
                "item_name": {"type": "string"},
                "item_id": {"type": "integer"}
            }
        },
        "Offer": {
            "type": "object",
            "required": ["name", "price", "items"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string", "x-nullable": true},
                "price": {"type": "number"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/Item"}}
            }
        },
        "UserIn": {
            "type": "object",
            "required": ["username", "password", "email"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string", "format": "password"},
                "email": {"type": "string", "format": "email"},
                "full_name": {"type": "string", "x-nullable": true}
            }
        },
        "UserOut": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string", "format": "email"},
                "full_name": {"type": "string", "x-nullable": true}
            }
        },
        "ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {
                            "type": "object",
                            "properties": {
                                "validation_errors": {"type": "array", "items": {"$ref": "#/definitions/ValidationError"}}
                            }
                        },
                        "timestamp": {"type": "string", "format": "date-time"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "3.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Item Showcase API",
	Description:      "Request and response validation showcase. The configured snapshot is served at the root path; every snapshot is also served under /v1, /v2 and /v3.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
