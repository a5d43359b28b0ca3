// Package docs Code generated by swaggo/swag. DO NOT EDIT
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
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/accounts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "List accounts",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Account"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Create an account",
                "parameters": [
                    {
                        "description": "Account data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/accounts.CreateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Account"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/accounts/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get an account with its contacts",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Account ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Account"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Update an account",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Account ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/accounts.UpdateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Account"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Delete an account",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Account ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/activity": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Record an interaction manually",
                "parameters": [
                    {
                        "description": "Interaction data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.logRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.InteractionLog"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/activity/feed": {
            "get": {
                "description": "Returns formatted recent activity for the organization, optionally scoped to one user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Recent activity feed",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Scope to one user",
                        "name": "user_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Window in days (default 7)",
                        "name": "days",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Max entries (default 20, cap 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/activity.ActivityView"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/change-password": {
            "post": {
                "description": "Verifies the current password and stores a new one",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Change password",
                "parameters": [
                    {
                        "description": "Password change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ChangePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/login": {
            "post": {
                "description": "Verifies credentials and returns a JWT",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.AuthResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Blacklists the current token until it expires",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log out",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/me": {
            "get": {
                "description": "Returns the authenticated user's profile",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.UserInfo"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/register": {
            "post": {
                "description": "Creates a user account and returns a JWT",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Registration data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/contacts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "List contacts",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Filter by account",
                        "name": "account_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Contact"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Create a contact",
                "parameters": [
                    {
                        "description": "Contact data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/contacts.CreateContactRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Contact"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/contacts/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Get a contact",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Contact"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Update a contact",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/contacts.UpdateContactRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Contact"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Delete a contact",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/contacts/{id}/activity": {
            "get": {
                "description": "Includes entries from opportunities where the contact is primary",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Activity for a contact",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.InteractionLog"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/export/leads": {
            "get": {
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Export leads as XLSX",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/export/pipeline": {
            "get": {
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "export"
                ],
                "summary": "Export the opportunity pipeline as XLSX",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/leads": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "List leads",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Lead"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Create a lead",
                "parameters": [
                    {
                        "description": "Lead data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/leads.CreateLeadRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Lead"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/leads/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Get a lead",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lead ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Lead"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Update a lead",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lead ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/leads.UpdateLeadRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Lead"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Delete a lead",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lead ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/leads/{id}/activity": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Activity for a lead",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lead ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.InteractionLog"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/leads/{id}/convert": {
            "post": {
                "description": "Creates an account, contact and opportunity from a qualified lead in one transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Convert a qualified lead",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lead ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/leads.ConversionResult"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/opportunities": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opportunities"
                ],
                "summary": "List opportunities",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by stage",
                        "name": "stage",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Opportunity"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opportunities"
                ],
                "summary": "Create an opportunity",
                "parameters": [
                    {
                        "description": "Opportunity data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/opportunities.CreateOpportunityRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Opportunity"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/opportunities/pipeline": {
            "get": {
                "description": "Sums the amounts of open opportunities, excluding won and lost",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opportunities"
                ],
                "summary": "Open pipeline value",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "number",
                                "format": "float64"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/opportunities/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opportunities"
                ],
                "summary": "Get an opportunity",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Opportunity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Opportunity"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opportunities"
                ],
                "summary": "Update an opportunity",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Opportunity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/opportunities.UpdateOpportunityRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Opportunity"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "opportunities"
                ],
                "summary": "Delete an opportunity",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Opportunity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/opportunities/{id}/activity": {
            "get": {
                "description": "Includes entries recorded against the opportunity's primary contact",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Activity for an opportunity",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Opportunity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.InteractionLog"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/organizations": {
            "post": {
                "description": "Creates the organization and makes the caller its admin",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "organizations"
                ],
                "summary": "Create an organization",
                "parameters": [
                    {
                        "description": "Organization data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/organization.CreateRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/organizations/current": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "organizations"
                ],
                "summary": "Get the caller's organization",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/organizations/current/members": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "organizations"
                ],
                "summary": "List organization members",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.User"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "organizations"
                ],
                "summary": "Add a user to the organization",
                "parameters": [
                    {
                        "description": "Membership data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.addMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.User"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/organizations/current/members/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "organizations"
                ],
                "summary": "Remove a user from the organization",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/products": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "List products",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Only active products",
                        "name": "active",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Product"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Create a product",
                "parameters": [
                    {
                        "description": "Product data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.CreateProductRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Product"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/products/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Get a product",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Product"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Update a product",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/products.UpdateProductRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Product"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Deactivates the product so it cannot be quoted; existing line items keep their captured price",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "products"
                ],
                "summary": "Retire a product",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Product"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/quotes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "quotes"
                ],
                "summary": "List quotes",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Filter by opportunity",
                        "name": "opportunity_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Quote"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "quotes"
                ],
                "summary": "Create a quote",
                "parameters": [
                    {
                        "description": "Quote data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/quotes.CreateQuoteRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Quote"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/quotes/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "quotes"
                ],
                "summary": "Get a quote with its line items",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Quote ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Quote"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/quotes/{id}/items": {
            "post": {
                "description": "Adds the item and refreshes the quote total in one transaction",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "quotes"
                ],
                "summary": "Add a line item to a quote",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Quote ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Line item data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/quotes.LineItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Quote"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/quotes/{id}/items/{itemId}": {
            "put": {
                "description": "Changes the item and refreshes the quote total in one transaction",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "quotes"
                ],
                "summary": "Update a quote line item",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Quote ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Line item ID",
                        "name": "itemId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Line item change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.updateLineItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Quote"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Removes the item and refreshes the quote total in one transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "quotes"
                ],
                "summary": "Delete a quote line item",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Quote ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Line item ID",
                        "name": "itemId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Quote"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/quotes/{id}/recalculate": {
            "post": {
                "description": "Re-sums the line items and stores the result; safe to repeat",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "quotes"
                ],
                "summary": "Recalculate a quote total",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Quote ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Quote"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/tasks": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "List tasks",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by status",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by owner",
                        "name": "owner_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Task"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Create a task",
                "parameters": [
                    {
                        "description": "Task data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/tasks.CreateTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ent.Task"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/tasks/overdue": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "List overdue tasks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/ent.Task"
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/tasks/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Get a task",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Task"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Update a task",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/tasks.UpdateTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Task"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Delete a task",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SuccessResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/tasks/{id}/complete": {
            "post": {
                "description": "Completes the task and records it on the activity timeline",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Mark a task completed",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Task ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ent.Task"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/users/{id}/activity-summary": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Per-user activity summary",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Window in days (default 30)",
                        "name": "days",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/activity.Summary"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "accounts.CreateAccountRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "industry": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                }
            }
        },
        "accounts.UpdateAccountRequest": {
            "type": "object",
            "properties": {
                "industry": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "website": {
                    "type": "string"
                }
            }
        },
        "activity.ActivityEntity": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "activity.ActivityUser": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "activity.ActivityView": {
            "type": "object",
            "properties": {
                "entity": {
                    "$ref": "#/definitions/activity.ActivityEntity"
                },
                "id": {
                    "type": "integer"
                },
                "summary": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/activity.ActivityUser"
                }
            }
        },
        "activity.Summary": {
            "type": "object",
            "properties": {
                "by_entity": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "by_type": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "period_days": {
                    "type": "integer"
                },
                "total_activities": {
                    "type": "integer"
                }
            }
        },
        "contacts.CreateContactRequest": {
            "type": "object",
            "required": [
                "email",
                "name"
            ],
            "properties": {
                "account_id": {
                    "type": "integer"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "contacts.UpdateContactRequest": {
            "type": "object",
            "properties": {
                "account_id": {
                    "type": "integer"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "ent.Account": {
            "type": "object",
            "properties": {
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the AccountQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.AccountEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "industry": {
                    "description": "Industry sector",
                    "type": "string"
                },
                "location": {
                    "description": "Headquarters location",
                    "type": "string"
                },
                "name": {
                    "description": "Company name",
                    "type": "string"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "size": {
                    "description": "Company size (e.g. 1-10, 11-50)",
                    "type": "string"
                },
                "website": {
                    "description": "Company website URL",
                    "type": "string"
                }
            }
        },
        "ent.AccountEdges": {
            "type": "object",
            "properties": {
                "contacts": {
                    "description": "Contacts working at this account",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Contact"
                    }
                },
                "opportunities": {
                    "description": "Opportunities against this account",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Opportunity"
                    }
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                }
            }
        },
        "ent.Contact": {
            "type": "object",
            "properties": {
                "account_id": {
                    "description": "Account the contact belongs to",
                    "type": "integer"
                },
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the ContactQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ContactEdges"
                        }
                    ]
                },
                "email": {
                    "description": "Email address",
                    "type": "string"
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "name": {
                    "description": "Contact full name",
                    "type": "string"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "phone": {
                    "description": "Phone number (E.164 where parseable)",
                    "type": "string"
                },
                "title": {
                    "description": "Job title",
                    "type": "string"
                }
            }
        },
        "ent.ContactEdges": {
            "type": "object",
            "properties": {
                "account": {
                    "description": "Account holds the value of the account edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Account"
                        }
                    ]
                },
                "interactions": {
                    "description": "Interactions holds the value of the interactions edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.InteractionLog"
                    }
                },
                "opportunities": {
                    "description": "Opportunities where this contact is the point of contact",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Opportunity"
                    }
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                }
            }
        },
        "ent.InteractionLog": {
            "type": "object",
            "properties": {
                "contact_id": {
                    "description": "Contact target",
                    "type": "integer"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the InteractionLogQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.InteractionLogEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "lead_id": {
                    "description": "Lead target (any subset of lead/contact/opportunity may be set)",
                    "type": "integer"
                },
                "opportunity_id": {
                    "description": "Opportunity target",
                    "type": "integer"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "summary": {
                    "description": "Human-readable description of the event",
                    "type": "string"
                },
                "timestamp": {
                    "description": "When the activity happened",
                    "type": "string"
                },
                "type": {
                    "description": "Kind of interaction",
                    "allOf": [
                        {
                            "$ref": "#/definitions/interactionlog.Type"
                        }
                    ]
                },
                "user_id": {
                    "description": "User the activity is attributed to",
                    "type": "integer"
                }
            }
        },
        "ent.InteractionLogEdges": {
            "type": "object",
            "properties": {
                "contact": {
                    "description": "Contact holds the value of the contact edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Contact"
                        }
                    ]
                },
                "lead": {
                    "description": "Lead holds the value of the lead edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Lead"
                        }
                    ]
                },
                "opportunity": {
                    "description": "Opportunity holds the value of the opportunity edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Opportunity"
                        }
                    ]
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                },
                "user": {
                    "description": "User holds the value of the user edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.User"
                        }
                    ]
                }
            }
        },
        "ent.Lead": {
            "type": "object",
            "properties": {
                "assigned_to_id": {
                    "description": "User responsible for this lead",
                    "type": "integer"
                },
                "company": {
                    "description": "Company the prospect works for",
                    "type": "string"
                },
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the LeadQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.LeadEdges"
                        }
                    ]
                },
                "email": {
                    "description": "Email address",
                    "type": "string"
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "name": {
                    "description": "Prospect full name",
                    "type": "string"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "phone": {
                    "description": "Phone number (E.164 where parseable)",
                    "type": "string"
                },
                "source": {
                    "description": "Where the lead came from (webform, referral, ...)",
                    "type": "string"
                },
                "status": {
                    "description": "Lead lifecycle status",
                    "allOf": [
                        {
                            "$ref": "#/definitions/lead.Status"
                        }
                    ]
                },
                "updated_at": {
                    "description": "Last update timestamp",
                    "type": "string"
                }
            }
        },
        "ent.LeadEdges": {
            "type": "object",
            "properties": {
                "assigned_to": {
                    "description": "AssignedTo holds the value of the assigned_to edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.User"
                        }
                    ]
                },
                "interactions": {
                    "description": "Interactions holds the value of the interactions edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.InteractionLog"
                    }
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                },
                "tasks": {
                    "description": "Tasks holds the value of the tasks edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Task"
                    }
                }
            }
        },
        "ent.Opportunity": {
            "type": "object",
            "properties": {
                "account_id": {
                    "description": "Account the deal is against",
                    "type": "integer"
                },
                "amount": {
                    "description": "Expected deal value in USD",
                    "type": "number"
                },
                "close_date": {
                    "description": "Expected close date",
                    "type": "string"
                },
                "contact_id": {
                    "description": "Primary point of contact",
                    "type": "integer"
                },
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the OpportunityQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.OpportunityEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "name": {
                    "description": "Deal name",
                    "type": "string"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "owner_id": {
                    "description": "User who owns the deal",
                    "type": "integer"
                },
                "stage": {
                    "description": "Sales pipeline stage",
                    "allOf": [
                        {
                            "$ref": "#/definitions/opportunity.Stage"
                        }
                    ]
                },
                "updated_at": {
                    "description": "Last update timestamp",
                    "type": "string"
                }
            }
        },
        "ent.OpportunityEdges": {
            "type": "object",
            "properties": {
                "account": {
                    "description": "Account holds the value of the account edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Account"
                        }
                    ]
                },
                "contact": {
                    "description": "Contact holds the value of the contact edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Contact"
                        }
                    ]
                },
                "interactions": {
                    "description": "Interactions holds the value of the interactions edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.InteractionLog"
                    }
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                },
                "owner": {
                    "description": "Owner holds the value of the owner edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.User"
                        }
                    ]
                },
                "quotes": {
                    "description": "Quotes holds the value of the quotes edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Quote"
                    }
                },
                "tasks": {
                    "description": "Tasks holds the value of the tasks edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Task"
                    }
                }
            }
        },
        "ent.Organization": {
            "type": "object",
            "properties": {
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "description": {
                    "description": "Organization description",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the OrganizationQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.OrganizationEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "name": {
                    "description": "Organization name",
                    "type": "string"
                },
                "updated_at": {
                    "description": "Last update timestamp",
                    "type": "string"
                }
            }
        },
        "ent.OrganizationEdges": {
            "type": "object",
            "properties": {
                "accounts": {
                    "description": "Accounts holds the value of the accounts edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Account"
                    }
                },
                "contacts": {
                    "description": "Contacts holds the value of the contacts edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Contact"
                    }
                },
                "interactions": {
                    "description": "Interactions holds the value of the interactions edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.InteractionLog"
                    }
                },
                "leads": {
                    "description": "Leads holds the value of the leads edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Lead"
                    }
                },
                "line_items": {
                    "description": "LineItems holds the value of the line_items edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.QuoteLineItem"
                    }
                },
                "opportunities": {
                    "description": "Opportunities holds the value of the opportunities edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Opportunity"
                    }
                },
                "products": {
                    "description": "Products holds the value of the products edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Product"
                    }
                },
                "quotes": {
                    "description": "Quotes holds the value of the quotes edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Quote"
                    }
                },
                "tasks": {
                    "description": "Tasks holds the value of the tasks edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Task"
                    }
                },
                "users": {
                    "description": "Users belonging to this organization",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.User"
                    }
                }
            }
        },
        "ent.Product": {
            "type": "object",
            "properties": {
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "currency": {
                    "description": "ISO 4217 currency code",
                    "type": "string"
                },
                "description": {
                    "description": "Product description",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the ProductQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.ProductEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "is_active": {
                    "description": "Whether the product can be quoted",
                    "type": "boolean"
                },
                "name": {
                    "description": "Product name",
                    "type": "string"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "price": {
                    "description": "List price per unit",
                    "type": "number"
                }
            }
        },
        "ent.ProductEdges": {
            "type": "object",
            "properties": {
                "line_items": {
                    "description": "LineItems holds the value of the line_items edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.QuoteLineItem"
                    }
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                }
            }
        },
        "ent.Quote": {
            "type": "object",
            "properties": {
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "created_by_id": {
                    "description": "User who created the quote",
                    "type": "integer"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the QuoteQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.QuoteEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "notes": {
                    "description": "Free-text notes",
                    "type": "string"
                },
                "opportunity_id": {
                    "description": "Opportunity the quote belongs to",
                    "type": "integer"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "title": {
                    "description": "Quote title",
                    "type": "string"
                },
                "total_price": {
                    "description": "Cached sum of line item totals; recomputed on every line item write",
                    "type": "number"
                }
            }
        },
        "ent.QuoteEdges": {
            "type": "object",
            "properties": {
                "created_by": {
                    "description": "CreatedBy holds the value of the created_by edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.User"
                        }
                    ]
                },
                "line_items": {
                    "description": "LineItems holds the value of the line_items edge.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.QuoteLineItem"
                    }
                },
                "opportunity": {
                    "description": "Opportunity holds the value of the opportunity edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Opportunity"
                        }
                    ]
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                }
            }
        },
        "ent.QuoteLineItem": {
            "type": "object",
            "properties": {
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the QuoteLineItemQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.QuoteLineItemEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "product_id": {
                    "description": "Quoted product (null if the product was deleted)",
                    "type": "integer"
                },
                "quantity": {
                    "description": "Number of units",
                    "type": "integer"
                },
                "quote_id": {
                    "description": "Quote the line item belongs to",
                    "type": "integer"
                },
                "unit_price": {
                    "description": "Price per unit at quoting time",
                    "type": "number"
                }
            }
        },
        "ent.QuoteLineItemEdges": {
            "type": "object",
            "properties": {
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                },
                "product": {
                    "description": "Product holds the value of the product edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Product"
                        }
                    ]
                },
                "quote": {
                    "description": "Quote holds the value of the quote edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Quote"
                        }
                    ]
                }
            }
        },
        "ent.Task": {
            "type": "object",
            "properties": {
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "due_date": {
                    "description": "When the task is due",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the TaskQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.TaskEdges"
                        }
                    ]
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "lead_id": {
                    "description": "Related lead",
                    "type": "integer"
                },
                "notes": {
                    "description": "Free-text notes",
                    "type": "string"
                },
                "opportunity_id": {
                    "description": "Related opportunity",
                    "type": "integer"
                },
                "organization_id": {
                    "description": "Owning organization",
                    "type": "integer"
                },
                "owner_id": {
                    "description": "User responsible for the task",
                    "type": "integer"
                },
                "status": {
                    "description": "Task status",
                    "allOf": [
                        {
                            "$ref": "#/definitions/task.Status"
                        }
                    ]
                },
                "title": {
                    "description": "Task title",
                    "type": "string"
                },
                "type": {
                    "description": "Kind of sales activity",
                    "allOf": [
                        {
                            "$ref": "#/definitions/task.Type"
                        }
                    ]
                }
            }
        },
        "ent.TaskEdges": {
            "type": "object",
            "properties": {
                "lead": {
                    "description": "Lead holds the value of the lead edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Lead"
                        }
                    ]
                },
                "opportunity": {
                    "description": "Opportunity holds the value of the opportunity edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Opportunity"
                        }
                    ]
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                },
                "owner": {
                    "description": "Owner holds the value of the owner edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.User"
                        }
                    ]
                }
            }
        },
        "ent.User": {
            "type": "object",
            "properties": {
                "created_at": {
                    "description": "Creation timestamp",
                    "type": "string"
                },
                "edges": {
                    "description": "Edges holds the relations/edges for other nodes in the graph.\nThe values are being populated by the UserQuery when eager-loading is set.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.UserEdges"
                        }
                    ]
                },
                "email": {
                    "description": "User email address",
                    "type": "string"
                },
                "first_name": {
                    "description": "First name",
                    "type": "string"
                },
                "id": {
                    "description": "ID of the ent.",
                    "type": "integer"
                },
                "last_name": {
                    "description": "Last name",
                    "type": "string"
                },
                "organization_id": {
                    "description": "Organization the user belongs to (null until assigned)",
                    "type": "integer"
                },
                "role": {
                    "description": "User role for access control",
                    "allOf": [
                        {
                            "$ref": "#/definitions/user.Role"
                        }
                    ]
                },
                "updated_at": {
                    "description": "Last update timestamp",
                    "type": "string"
                },
                "username": {
                    "description": "Login username (defaults to email)",
                    "type": "string"
                }
            }
        },
        "ent.UserEdges": {
            "type": "object",
            "properties": {
                "assigned_leads": {
                    "description": "Leads assigned to this user",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Lead"
                    }
                },
                "interactions": {
                    "description": "Interaction logs recorded by this user",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.InteractionLog"
                    }
                },
                "opportunities": {
                    "description": "Opportunities owned by this user",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Opportunity"
                    }
                },
                "organization": {
                    "description": "Organization holds the value of the organization edge.",
                    "allOf": [
                        {
                            "$ref": "#/definitions/ent.Organization"
                        }
                    ]
                },
                "quotes": {
                    "description": "Quotes created by this user",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Quote"
                    }
                },
                "tasks": {
                    "description": "Tasks owned by this user",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ent.Task"
                    }
                }
            }
        },
        "handlers.addMemberRequest": {
            "type": "object",
            "required": [
                "role",
                "user_id"
            ],
            "properties": {
                "role": {
                    "type": "string",
                    "enum": [
                        "admin",
                        "manager",
                        "sales_rep"
                    ]
                },
                "user_id": {
                    "type": "integer"
                }
            }
        },
        "handlers.logRequest": {
            "type": "object",
            "required": [
                "summary",
                "type"
            ],
            "properties": {
                "contact_id": {
                    "type": "integer"
                },
                "lead_id": {
                    "type": "integer"
                },
                "opportunity_id": {
                    "type": "integer"
                },
                "summary": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "call",
                        "email",
                        "meeting",
                        "note"
                    ]
                }
            }
        },
        "handlers.updateLineItemRequest": {
            "type": "object",
            "required": [
                "quantity"
            ],
            "properties": {
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "interactionlog.Type": {
            "type": "string",
            "enum": [
                "call",
                "email",
                "meeting",
                "note"
            ],
            "x-enum-varnames": [
                "TypeCall",
                "TypeEmail",
                "TypeMeeting",
                "TypeNote"
            ]
        },
        "lead.Status": {
            "type": "string",
            "enum": [
                "new",
                "new",
                "contacted",
                "qualified",
                "converted",
                "disqualified"
            ],
            "x-enum-varnames": [
                "DefaultStatus",
                "StatusNew",
                "StatusContacted",
                "StatusQualified",
                "StatusConverted",
                "StatusDisqualified"
            ]
        },
        "leads.ConversionResult": {
            "type": "object",
            "properties": {
                "account": {
                    "$ref": "#/definitions/ent.Account"
                },
                "contact": {
                    "$ref": "#/definitions/ent.Contact"
                },
                "lead": {
                    "$ref": "#/definitions/ent.Lead"
                },
                "opportunity": {
                    "$ref": "#/definitions/ent.Opportunity"
                }
            }
        },
        "leads.CreateLeadRequest": {
            "type": "object",
            "required": [
                "email",
                "name"
            ],
            "properties": {
                "assigned_to": {
                    "type": "integer"
                },
                "company": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                }
            }
        },
        "leads.UpdateLeadRequest": {
            "type": "object",
            "properties": {
                "assigned_to": {
                    "type": "integer"
                },
                "company": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "new",
                        "contacted",
                        "qualified",
                        "converted",
                        "disqualified"
                    ]
                }
            }
        },
        "models.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.UserInfo"
                }
            }
        },
        "models.ChangePasswordRequest": {
            "type": "object",
            "required": [
                "confirm_password",
                "current_password",
                "new_password"
            ],
            "properties": {
                "confirm_password": {
                    "type": "string"
                },
                "current_password": {
                    "type": "string"
                },
                "new_password": {
                    "type": "string",
                    "minLength": 8
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "required": [
                "email",
                "first_name",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string",
                    "minLength": 1
                },
                "last_name": {
                    "type": "string"
                },
                "password": {
                    "type": "string",
                    "minLength": 8
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "admin",
                        "manager",
                        "sales_rep"
                    ]
                }
            }
        },
        "models.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "models.UserInfo": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "last_name": {
                    "type": "string"
                },
                "organization": {
                    "type": "integer"
                },
                "organization_name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "opportunities.CreateOpportunityRequest": {
            "type": "object",
            "required": [
                "account_id",
                "name"
            ],
            "properties": {
                "account_id": {
                    "type": "integer"
                },
                "amount": {
                    "type": "number",
                    "minimum": 0
                },
                "contact_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "integer"
                },
                "stage": {
                    "type": "string",
                    "enum": [
                        "qualification",
                        "proposal",
                        "negotiation",
                        "won",
                        "lost"
                    ]
                }
            }
        },
        "opportunities.UpdateOpportunityRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "minimum": 0
                },
                "contact_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "integer"
                },
                "stage": {
                    "type": "string",
                    "enum": [
                        "qualification",
                        "proposal",
                        "negotiation",
                        "won",
                        "lost"
                    ]
                }
            }
        },
        "opportunity.Stage": {
            "type": "string",
            "enum": [
                "qualification",
                "qualification",
                "proposal",
                "negotiation",
                "won",
                "lost"
            ],
            "x-enum-varnames": [
                "DefaultStage",
                "StageQualification",
                "StageProposal",
                "StageNegotiation",
                "StageWon",
                "StageLost"
            ]
        },
        "organization.CreateRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "minLength": 2
                }
            }
        },
        "products.CreateProductRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "currency": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "products.UpdateProductRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "quotes.CreateQuoteRequest": {
            "type": "object",
            "required": [
                "opportunity_id",
                "title"
            ],
            "properties": {
                "opportunity_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "quotes.LineItemRequest": {
            "type": "object",
            "required": [
                "product_id",
                "quantity"
            ],
            "properties": {
                "product_id": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "number",
                    "minimum": 0
                }
            }
        },
        "task.Status": {
            "type": "string",
            "enum": [
                "pending",
                "pending",
                "completed",
                "overdue"
            ],
            "x-enum-varnames": [
                "DefaultStatus",
                "StatusPending",
                "StatusCompleted",
                "StatusOverdue"
            ]
        },
        "task.Type": {
            "type": "string",
            "enum": [
                "call",
                "email",
                "meeting",
                "demo"
            ],
            "x-enum-varnames": [
                "TypeCall",
                "TypeEmail",
                "TypeMeeting",
                "TypeDemo"
            ]
        },
        "tasks.CreateTaskRequest": {
            "type": "object",
            "required": [
                "due_date",
                "title",
                "type"
            ],
            "properties": {
                "due_date": {
                    "type": "string"
                },
                "lead_id": {
                    "type": "integer"
                },
                "notes": {
                    "type": "string"
                },
                "opportunity_id": {
                    "type": "integer"
                },
                "owner_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "call",
                        "email",
                        "meeting",
                        "demo"
                    ]
                }
            }
        },
        "tasks.UpdateTaskRequest": {
            "type": "object",
            "properties": {
                "due_date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "user.Role": {
            "type": "string",
            "enum": [
                "sales_rep",
                "admin",
                "manager",
                "sales_rep"
            ],
            "x-enum-varnames": [
                "DefaultRole",
                "RoleAdmin",
                "RoleManager",
                "RoleSalesRep"
            ]
        }
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
	Title:            "SalesCRM API",
	Description:      "Multi-tenant sales CRM backend: leads, accounts, opportunities, quotes and the activity timeline.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
