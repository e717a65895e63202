// Package docs registers the OpenAPI description served by gin-swagger.
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
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PingResponse"}}}
            }
        },
        "/services": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "List active services",
                "parameters": [
                    {"type": "boolean", "description": "Group by category", "name": "grouped", "in": "query"},
                    {"type": "string", "description": "en, es or pt", "name": "locale", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.ServiceResponse"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/services/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["services"],
                "summary": "Get an active service",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ServiceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/appointments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Appointments of a day",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD", "name": "day", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.AppointmentResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Book an appointment",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.BookingRequest"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/services": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List all services",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.ServiceResponse"}}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Add a service",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ServiceRequest"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/services/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Edit a service",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ServiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a service",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/services/{id}/active": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Activate or deactivate a service",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.ToggleServiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Toggle already in flight", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/appointments": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List appointments by date",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.AppointmentResponse"}}}}
            }
        },
        "/admin/appointments/{id}/status": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Change an appointment status",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/board": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Admin panel service list with in-flight markers",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.BoardResponse"}}}
            }
        },
        "/admin/board/refresh": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Reload the admin panel list from storage",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.BoardActionResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/board/services/{id}/toggle": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Optimistically flip the active flag of a service",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.BoardActionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "409": {"description": "Toggle already in flight", "schema": {"$ref": "#/definitions/response.BoardActionResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "response.PingResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "pong"}}
        },
        "response.ServiceResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "integer"},
                "price": {"type": "number"},
                "price_display": {"type": "string", "example": "R$ 25,00"},
                "category": {"type": "string"},
                "category_key": {"type": "string"},
                "category_label": {"type": "string"},
                "active": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "response.BoardServiceResponse": {
            "type": "object",
            "allOf": [{"$ref": "#/definitions/response.ServiceResponse"}],
            "properties": {"in_flight": {"type": "boolean"}}
        },
        "response.BoardResponse": {
            "type": "object",
            "properties": {
                "services": {"type": "array", "items": {"$ref": "#/definitions/response.BoardServiceResponse"}}
            }
        },
        "response.BoardActionResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string", "enum": ["fetch", "add", "update", "delete", "toggle"]},
                "service_id": {"type": "string"},
                "state": {"type": "string", "enum": ["idle", "pending", "committed", "rolled_back"]},
                "service": {"$ref": "#/definitions/response.ServiceResponse"},
                "notification": {"$ref": "#/definitions/i18n.RenderedNotification"}
            }
        },
        "i18n.RenderedNotification": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "variant": {"type": "string", "enum": ["default", "destructive"]}
            }
        },
        "response.AppointmentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "client_name": {"type": "string"},
                "client_phone": {"type": "string"},
                "client_email": {"type": "string"},
                "service_name": {"type": "string"},
                "date": {"type": "string"},
                "date_valid": {"type": "boolean"},
                "date_display": {"type": "string"},
                "status": {"type": "string", "enum": ["Pending", "Confirmed", "Completed", "Cancelled"]},
                "status_label": {"type": "string"}
            }
        },
        "request.ServiceRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Classic Cut"},
                "description": {"type": "string"},
                "duration": {"type": "string", "example": "30"},
                "price": {"type": "string", "example": "25"},
                "category": {"type": "string", "example": "Haircuts"},
                "active": {"type": "boolean"}
            }
        },
        "request.ToggleServiceRequest": {
            "type": "object",
            "required": ["active"],
            "properties": {"active": {"type": "boolean"}}
        },
        "request.BookingRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string", "example": "+5511987654321"},
                "email": {"type": "string"},
                "service_id": {"type": "string"},
                "date": {"type": "string", "example": "2024-10-01"},
                "time": {"type": "string", "example": "13:30"}
            }
        },
        "request.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "example": "Confirmed"}}
        },
        "request.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "admin@admin.com"},
                "password": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
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
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Barbershop API",
	Description:      "Service catalog, bookings and admin panel of the barbershop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
