package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Announcement Console",
        "description": "Embeddable announcement management surface for portal hosts",
        "version": "0.1.0"
    },
    "basePath": "/announcement-console",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Announcements", "description": "Search, detail dialog and row actions"},
        {"name": "Widgets", "description": "Embeddable banner carousel and active list"}
    ],
    "paths": {
        "/announcements/search": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Search announcements",
                "parameters": [
                    {"name": "reuse", "in": "query", "type": "boolean"},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/SearchCriteria"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/search/reset": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Reset search criteria and results",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/announcements/dialog/{mode}": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Open the detail dialog",
                "parameters": [
                    {"name": "mode", "in": "path", "required": true, "type": "string", "enum": ["create", "view", "edit", "copy"]},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/Announcement"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/dialog/form": {
            "put": {
                "tags": ["Announcements"],
                "summary": "Replace the dialog's field values",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnnouncementForm"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/dialog/save": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Save the open dialog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/dialog/close": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Close the dialog without saving",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/announcements/{id}": {
            "delete": {
                "tags": ["Announcements"],
                "summary": "Delete an announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/metadata": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Workspace and product metadata for the filter dropdowns",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notices": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Drain the notices queued for the shell",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/widgets/banner": {
            "get": {
                "tags": ["Widgets"],
                "summary": "Banner carousel data",
                "parameters": [
                    {"name": "workspaceName", "in": "query", "type": "string"},
                    {"name": "productName", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/widgets/banner/{id}/dismiss": {
            "post": {
                "tags": ["Widgets"],
                "summary": "Hide a banner announcement for this user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/widgets/active-list": {
            "get": {
                "tags": ["Widgets"],
                "summary": "Workspace-global active announcements",
                "parameters": [
                    {"name": "workspaceName", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Announcement": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "modificationCount": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "productName": {"type": "string"},
                "workspaceName": {"type": "string"},
                "type": {"type": "string", "enum": ["INFO", "EVENT", "SYSTEM_MAINTENANCE"]},
                "priority": {"type": "string", "enum": ["IMPORTANT", "NORMAL", "LOW"]},
                "status": {"type": "string", "enum": ["ACTIVE", "INACTIVE"]},
                "startDate": {"type": "string", "format": "date-time"},
                "endDate": {"type": "string", "format": "date-time"}
            }
        },
        "AnnouncementForm": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "modificationCount": {"type": "integer"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "productName": {"type": "string"},
                "workspaceName": {"type": "string"},
                "type": {"type": "string"},
                "priority": {"type": "string"},
                "status": {"type": "string"},
                "startDate": {"type": "string", "format": "date-time"},
                "endDate": {"type": "string", "format": "date-time"}
            }
        },
        "SearchCriteria": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "workspaceName": {"type": "string"},
                "productName": {"type": "string"},
                "priorities": {"type": "array", "items": {"type": "string"}},
                "statuses": {"type": "array", "items": {"type": "string"}},
                "types": {"type": "array", "items": {"type": "string"}},
                "startDateFrom": {"type": "string", "format": "date-time"},
                "startDateTo": {"type": "string", "format": "date-time"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
