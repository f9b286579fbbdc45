// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "User registered and token generated"}, "400": {"description": "Invalid input"}, "409": {"description": "Username or email taken"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login user", "responses": {"200": {"description": "User authenticated and token generated"}, "401": {"description": "Invalid credentials"}}}},
        "/profile": {"get": {"security": [{"BearerAuth": []}], "tags": ["user"], "summary": "Get user profile", "responses": {"200": {"description": "User profile"}}}},
        "/categories": {"get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "List categories", "responses": {"200": {"description": "Categories"}}}},
        "/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses", "responses": {"200": {"description": "Paginated expenses"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Create an expense", "responses": {"201": {"description": "Expense created"}, "400": {"description": "Invalid input"}}}
        },
        "/expenses/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Get expense by ID", "responses": {"200": {"description": "Expense"}, "404": {"description": "Expense not found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Update expense", "responses": {"200": {"description": "Updated expense"}, "404": {"description": "Expense not found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Delete expense", "responses": {"200": {"description": "Expense deleted"}, "404": {"description": "Expense not found"}}}
        },
        "/budgets": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "List budgets", "responses": {"200": {"description": "Budgets"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Set a budget", "responses": {"200": {"description": "Budget saved"}, "400": {"description": "Invalid input"}}}
        },
        "/budgets/analysis": {"get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Budget vs actual", "responses": {"200": {"description": "Budget analysis"}}}},
        "/analytics/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Dashboard", "responses": {"200": {"description": "Dashboard"}}}},
        "/analytics/categories": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Category totals", "responses": {"200": {"description": "Category totals"}}}},
        "/analytics/monthly": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Monthly totals", "responses": {"200": {"description": "Monthly totals"}}}},
        "/analytics/daily": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Daily totals", "responses": {"200": {"description": "Daily totals"}}}},
        "/analytics/top-categories": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Top categories", "responses": {"200": {"description": "Top categories"}}}},
        "/export": {"get": {"security": [{"BearerAuth": []}], "tags": ["export"], "summary": "Export expenses", "produces": ["application/octet-stream"], "responses": {"200": {"description": "Export file"}, "404": {"description": "No expenses match the filter"}}}}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Daily Budget API",
	Description:      "Daily Budget tracks personal expenses, compares them with monthly budgets and exports them for reporting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
