package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "StudyHive API",
        "description": "Assignment submission and grading backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Assignments", "description": "Assignment browsing and ownership-gated mutations"},
        {"name": "Submissions", "description": "Solution submission and grading"},
        {"name": "Users", "description": "User profiles"},
        {"name": "Auth", "description": "Session cookie management"}
    ],
    "paths": {
        "/": {
            "get": {
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Browse assignments",
                "parameters": [
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Page of assignments plus estimated total"}
                }
            }
        },
        "/api/v1/assignment/{id}": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Get assignment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Assignment or failure envelope"}
                }
            }
        },
        "/api/v1/create-assignment": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Create assignment",
                "parameters": [
                    {"name": "email", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Insert result"}
                }
            }
        },
        "/api/v1/update-assignment/{id}": {
            "patch": {
                "tags": ["Assignments"],
                "summary": "Update own assignment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "required": true, "type": "string"},
                    {"name": "productEmail", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Update result"},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Ownership mismatch"}
                }
            }
        },
        "/api/v1/update-students/{id}": {
            "patch": {
                "tags": ["Assignments"],
                "summary": "Open assignment update",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Update result"}
                }
            }
        },
        "/api/v1/my-assignment": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List own assignments",
                "parameters": [
                    {"name": "email", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Assignments owned by the caller"},
                    "401": {"description": "Missing token or ownership mismatch"}
                }
            }
        },
        "/api/v1/features-assignment": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List featured assignments",
                "responses": {
                    "200": {"description": "Assignments with the spotlight flag"}
                }
            }
        },
        "/api/v1/delete-my-assign/{id}": {
            "delete": {
                "tags": ["Assignments"],
                "summary": "Delete own assignment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "required": true, "type": "string"},
                    {"name": "assemail", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Delete result"},
                    "401": {"description": "Missing token or ownership mismatch"}
                }
            }
        },
        "/api/v1/pending-submitions": {
            "get": {
                "tags": ["Submissions"],
                "summary": "List pending submissions",
                "responses": {
                    "200": {"description": "Ungraded submissions"}
                }
            }
        },
        "/api/v1/create-submition": {
            "post": {
                "tags": ["Submissions"],
                "summary": "Create submission",
                "responses": {
                    "200": {"description": "Insert result"}
                }
            }
        },
        "/api/v1/update-submite/{id}": {
            "patch": {
                "tags": ["Submissions"],
                "summary": "Grade submission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Update result"}
                }
            }
        },
        "/api/v1/my-submition": {
            "get": {
                "tags": ["Submissions"],
                "summary": "List own submissions",
                "parameters": [
                    {"name": "email", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Submissions declared by the caller"},
                    "403": {"description": "Ownership mismatch"}
                }
            }
        },
        "/api/v1/jwt": {
            "post": {
                "tags": ["Auth"],
                "summary": "Issue identity token",
                "responses": {
                    "200": {"description": "Token issued, session cookie set"}
                }
            }
        },
        "/api/v1/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "Session cookie cleared"}
                }
            }
        },
        "/api/v1/user": {
            "post": {
                "tags": ["Users"],
                "summary": "Create user",
                "responses": {
                    "200": {"description": "Insert result"}
                }
            }
        },
        "/api/v1/user/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "User or failure envelope"}
                }
            },
            "patch": {
                "tags": ["Users"],
                "summary": "Update own profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "email", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Update result"},
                    "403": {"description": "Ownership mismatch"}
                }
            }
        }
    },
    "definitions": {
        "FailureEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"}
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
