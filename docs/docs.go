// Package docs holds the generated OpenAPI definition served at /swagger.
package docs

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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with username and password",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token pair"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/uploads": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "tags": ["uploads"],
                "summary": "Submit a monthly report",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "name": "department_id", "in": "formData", "required": true},
                    {"type": "integer", "name": "month", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Upload accepted"},
                    "409": {"description": "Upload window not open"},
                    "422": {"description": "Workbook failed structural validation"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["uploads"],
                "summary": "List uploads visible to the caller",
                "responses": {"200": {"description": "List of uploads"}}
            }
        },
        "/uploads/{id}/approve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["uploads"],
                "summary": "Approve an upload",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Upload approved"},
                    "403": {"description": "Not a reviewer or wrong department"}
                }
            }
        },
        "/uploads/{id}/reject": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["uploads"],
                "summary": "Reject an upload",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "Upload rejected"}}
            }
        },
        "/templates": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "tags": ["templates"],
                "summary": "Publish a report template",
                "responses": {"201": {"description": "Template published"}}
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Dashboard summary",
                "responses": {"200": {"description": "Dashboard summary"}}
            }
        }
    },
    "definitions": {
        "handler.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "example": "finance_hod"},
                "password": {"type": "string", "example": "securepassword123"}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "MIS Portal API",
	Description:      "Monthly MIS report collection portal: uploads, reviews, master data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
