// Package docs holds the Swagger document served at /swagger.
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
        "/auth/signup": {"post": {"tags": ["auth"], "summary": "Register a new user"}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user"}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh access token"}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Logout user"}},
        "/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["me"], "summary": "Get current user profile"},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["me"], "summary": "Delete current user's account"}
        },
        "/me/entitlement": {"get": {"security": [{"BearerAuth": []}], "tags": ["me"], "summary": "Get current user's effective features"}},
        "/notices": {
            "get": {"tags": ["notices"], "summary": "List notices"},
            "post": {"security": [{"BearerAuth": []}], "tags": ["notices"], "summary": "Create a notice"}
        },
        "/notices/{id}": {
            "get": {"tags": ["notices"], "summary": "Get a notice"},
            "put": {"security": [{"BearerAuth": []}], "tags": ["notices"], "summary": "Edit a notice"},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["notices"], "summary": "Delete a notice"}
        },
        "/inquiries": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["inquiries"], "summary": "List inquiries"},
            "post": {"security": [{"BearerAuth": []}], "tags": ["inquiries"], "summary": "Open an inquiry"}
        },
        "/inquiries/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["inquiries"], "summary": "Get an inquiry"},
            "put": {"security": [{"BearerAuth": []}], "tags": ["inquiries"], "summary": "Edit an inquiry"},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["inquiries"], "summary": "Delete an inquiry"}
        },
        "/inquiries/{id}/reply": {"post": {"security": [{"BearerAuth": []}], "tags": ["inquiries"], "summary": "Answer an inquiry"}},
        "/reviews": {
            "get": {"tags": ["reviews"], "summary": "List reviews"},
            "post": {"security": [{"BearerAuth": []}], "tags": ["reviews"], "summary": "Post a review"}
        },
        "/reviews/{id}": {
            "get": {"tags": ["reviews"], "summary": "Get a review"},
            "put": {"security": [{"BearerAuth": []}], "tags": ["reviews"], "summary": "Edit a review"},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["reviews"], "summary": "Delete a review"}
        },
        "/users/{userId}/reviews": {"get": {"security": [{"BearerAuth": []}], "tags": ["reviews"], "summary": "List a user's reviews"}},
        "/plans": {"get": {"tags": ["plans"], "summary": "List plans"}},
        "/plans/{id}/features": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["plans"], "summary": "Get a plan's feature template"},
            "put": {"security": [{"BearerAuth": []}], "tags": ["plans"], "summary": "Replace a plan's feature template"}
        },
        "/admin/users": {"get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "List users"}},
        "/admin/users/{userId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Get a user"}},
        "/admin/users/{userId}/permissions": {"patch": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Set one entitlement field"}},
        "/admin/users/{userId}/plan": {"patch": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Assign a plan"}},
        "/payments": {"post": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "Record a payment intent"}},
        "/send-email": {"post": {"tags": ["mail"], "summary": "Send a contact form"}},
        "/inquiry/send-email": {"post": {"tags": ["mail"], "summary": "Send an inquiry notification"}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "EduAI API",
	Description:      "Back office for the EduAI learning automation extension: accounts, plans, entitlements, notices, inquiries, reviews and payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
