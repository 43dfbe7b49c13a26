// Package docs registers the stub API's OpenAPI document with swag so
// gin-swagger can serve it at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login-init": {
            "post": {
                "tags": ["auth"],
                "summary": "Check the password and send a one-time code",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"name": "username", "in": "formData", "type": "string", "required": true},
                    {"name": "password", "in": "formData", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/verify-otp": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange the one-time code for an access token",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyOTP"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Token"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Signed-in user",
                "security": [{"Bearer": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign out",
                "security": [{"Bearer": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}}}
            }
        },
        "/book-seva": {
            "get": {
                "tags": ["book-seva"],
                "summary": "List book distribution records, newest first",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "from_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "to_date", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {"200": {"description": "OK, wrapped as {data: [...]}"}}
            },
            "post": {
                "tags": ["book-seva"],
                "summary": "Create a book distribution record",
                "security": [{"Bearer": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/book-seva/{id}": {
            "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
            "get": {"tags": ["book-seva"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["book-seva"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["book-seva"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/calling-seva": {
            "get": {
                "tags": ["calling-seva"],
                "summary": "List outreach call records, newest first",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK, wrapped as {data: [...]}"}}
            },
            "post": {"tags": ["calling-seva"], "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/calling-seva/{id}": {
            "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
            "get": {"tags": ["calling-seva"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["calling-seva"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["calling-seva"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/expenses": {
            "get": {
                "tags": ["expenses"],
                "summary": "List expense records, newest first",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "skip", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "from_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "to_date", "in": "query", "type": "string", "format": "date"}
                ],
                "responses": {"200": {"description": "OK, wrapped as {data: [...]}"}}
            },
            "post": {"tags": ["expenses"], "security": [{"Bearer": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/expenses/{id}": {
            "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
            "get": {"tags": ["expenses"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["expenses"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["expenses"], "security": [{"Bearer": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/general/constants": {
            "get": {
                "tags": ["general"],
                "summary": "Option lists for record forms",
                "security": [{"Bearer": []}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "Message": {"type": "object", "properties": {"msg": {"type": "string"}}},
        "Error": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "VerifyOTP": {
            "type": "object",
            "required": ["email", "code"],
            "properties": {"email": {"type": "string"}, "code": {"type": "string"}}
        },
        "Token": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}}
        },
        "User": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}}
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "seva stub API",
	Description:      "In-memory stand-in for the seva records backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
