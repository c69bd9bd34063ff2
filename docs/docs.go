// Package docs serves the OpenAPI description of the POS API at /swagger/*any.
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
				"summary": "Health check",
				"tags": [
					"health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/menu": {
			"get": {
				"summary": "List menu items",
				"tags": [
					"menu"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/response.MenuItemResponse"
							}
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/bills/items": {
			"post": {
				"summary": "Open a draft bill with its first item",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.AddItemRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.BillResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/bills/{bill_id}": {
			"get": {
				"summary": "Get a bill with totals",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "bill_id",
						"required": true,
						"type": "string",
						"description": ""
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.BillResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/bills/{bill_id}/items": {
			"post": {
				"summary": "Add an item to a bill",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.AddItemRequest"
						}
					},
					{
						"in": "path",
						"name": "bill_id",
						"required": true,
						"type": "string",
						"description": ""
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.BillResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/bills/{bill_id}/items/{menu_item_id}": {
			"delete": {
				"summary": "Remove units of an item",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "bill_id",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"in": "path",
						"name": "menu_item_id",
						"required": true,
						"type": "string",
						"description": ""
					},
					{
						"in": "query",
						"name": "quantity",
						"type": "integer",
						"description": "Units to remove, default 1"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.BillResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/bills/{bill_id}/discount": {
			"put": {
				"summary": "Set the discount percent",
				"tags": [
					"bills"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.DiscountRequest"
						}
					},
					{
						"in": "path",
						"name": "bill_id",
						"required": true,
						"type": "string",
						"description": ""
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.BillResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/bills/{bill_id}/hold": {
			"post": {
				"summary": "Hold a draft bill under a customer name",
				"tags": [
					"holds"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.HoldRequest"
						}
					},
					{
						"in": "path",
						"name": "bill_id",
						"required": true,
						"type": "string",
						"description": ""
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.HoldResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/bills/{bill_id}/payments": {
			"post": {
				"summary": "Finalize a bill",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.FinalizeRequest"
						}
					},
					{
						"in": "path",
						"name": "bill_id",
						"required": true,
						"type": "string",
						"description": ""
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.TransactionResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"402": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"422": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/holds": {
			"get": {
				"summary": "List held bills",
				"tags": [
					"holds"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "header",
						"name": "X-POS-Role",
						"type": "string",
						"enum": [
							"staff",
							"admin"
						],
						"description": "Acting role"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.HeldBillsResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"500": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/holds/resume": {
			"post": {
				"summary": "Resume a held bill",
				"tags": [
					"holds"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.ResumeRequest"
						}
					},
					{
						"in": "header",
						"name": "X-POS-Role",
						"type": "string",
						"enum": [
							"staff",
							"admin"
						],
						"description": "Acting role"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ResumeResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				},
				"consumes": [
					"application/json"
				]
			}
		},
		"/holds/{hold_id}/events": {
			"get": {
				"summary": "Resume audit trail of a hold",
				"tags": [
					"holds"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "header",
						"name": "X-POS-Role",
						"type": "string",
						"enum": [
							"staff",
							"admin"
						],
						"description": "Acting role"
					},
					{
						"in": "path",
						"name": "hold_id",
						"required": true,
						"type": "string",
						"description": ""
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/response.ResumeEventResponse"
							}
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/transactions/{transaction_id}": {
			"get": {
				"summary": "Get a payment transaction",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "transaction_id",
						"required": true,
						"type": "string",
						"description": ""
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.TransactionResponse"
						}
					},
					"404": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/reports/daily": {
			"get": {
				"summary": "Daily report for one business day",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "header",
						"name": "X-POS-Role",
						"type": "string",
						"enum": [
							"staff",
							"admin"
						],
						"description": "Acting role"
					},
					{
						"in": "query",
						"name": "window",
						"type": "string",
						"description": "YYYY-MM-DD, default the open window"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ReportResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/reports/monthly": {
			"get": {
				"summary": "Report over the business days opening in a month",
				"tags": [
					"reports"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "header",
						"name": "X-POS-Role",
						"type": "string",
						"enum": [
							"staff",
							"admin"
						],
						"description": "Acting role"
					},
					{
						"in": "query",
						"name": "year",
						"type": "integer",
						"description": ""
					},
					{
						"in": "query",
						"name": "month",
						"type": "integer",
						"description": ""
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.ReportResponse"
						}
					},
					"400": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"403": {
						"description": "Error",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"pkg.HTTPError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"request.AddItemRequest": {
			"type": "object",
			"properties": {
				"menu_item_id": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				}
			},
			"required": [
				"menu_item_id"
			]
		},
		"request.DiscountRequest": {
			"type": "object",
			"properties": {
				"percent": {
					"type": "string"
				}
			},
			"required": [
				"percent"
			]
		},
		"request.HoldRequest": {
			"type": "object",
			"properties": {
				"customer_name": {
					"type": "string"
				}
			}
		},
		"request.ResumeRequest": {
			"type": "object",
			"properties": {
				"customer_name": {
					"type": "string"
				},
				"hold_id": {
					"type": "string"
				},
				"held_at": {
					"type": "string"
				}
			}
		},
		"request.FinalizeRequest": {
			"type": "object",
			"properties": {
				"payment_mode": {
					"type": "string"
				},
				"transaction_id": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"customer_phone": {
					"type": "string"
				},
				"cash_details": {
					"type": "string"
				}
			},
			"required": [
				"payment_mode"
			]
		},
		"response.MenuItemResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"price_cents": {
					"type": "integer"
				},
				"price": {
					"type": "string"
				}
			}
		},
		"response.LineItemResponse": {
			"type": "object",
			"properties": {
				"menu_item_id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"quantity": {
					"type": "integer"
				},
				"unit_price_cents": {
					"type": "integer"
				},
				"line_total_cents": {
					"type": "integer"
				}
			}
		},
		"response.BillResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.LineItemResponse"
					}
				},
				"discount_percent": {
					"type": "string"
				},
				"subtotal_cents": {
					"type": "integer"
				},
				"discount_cents": {
					"type": "integer"
				},
				"total_cents": {
					"type": "integer"
				},
				"total": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"customer_phone": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"response.HoldResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"bill_id": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"held_at": {
					"type": "string"
				},
				"day_window_id": {
					"type": "string"
				}
			}
		},
		"response.HeldBillResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"bill_id": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"held_at": {
					"type": "string"
				},
				"day_window_id": {
					"type": "string"
				},
				"is_expired": {
					"type": "boolean"
				}
			}
		},
		"response.HeldBillsResponse": {
			"type": "object",
			"properties": {
				"day_window_id": {
					"type": "string"
				},
				"holds": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.HeldBillResponse"
					}
				}
			}
		},
		"response.ResumeResponse": {
			"type": "object",
			"properties": {
				"bill": {
					"$ref": "#/definitions/response.BillResponse"
				},
				"hold_id": {
					"type": "string"
				},
				"override_used": {
					"type": "boolean"
				}
			}
		},
		"response.ResumeEventResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"hold_id": {
					"type": "string"
				},
				"bill_id": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"outcome": {
					"type": "string"
				},
				"override_used": {
					"type": "boolean"
				},
				"at": {
					"type": "string"
				}
			}
		},
		"response.TransactionResponse": {
			"type": "object",
			"properties": {
				"transaction_id": {
					"type": "string"
				},
				"bill_id": {
					"type": "string"
				},
				"payment_mode": {
					"type": "string"
				},
				"subtotal_cents": {
					"type": "integer"
				},
				"discount_cents": {
					"type": "integer"
				},
				"final_total_cents": {
					"type": "integer"
				},
				"final_total": {
					"type": "string"
				},
				"customer_name": {
					"type": "string"
				},
				"customer_phone": {
					"type": "string"
				},
				"cash_details": {
					"type": "string"
				},
				"day_window_id": {
					"type": "string"
				},
				"closed_at": {
					"type": "string"
				},
				"provider_status": {
					"type": "string"
				},
				"provider_payload": {
					"type": "object"
				}
			}
		},
		"response.PaymentModeTotalsResponse": {
			"type": "object",
			"properties": {
				"payment_mode": {
					"type": "string"
				},
				"transaction_count": {
					"type": "integer"
				},
				"total_cents": {
					"type": "integer"
				},
				"total": {
					"type": "string"
				}
			}
		},
		"response.ReportResponse": {
			"type": "object",
			"properties": {
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"transaction_count": {
					"type": "integer"
				},
				"total_cents": {
					"type": "integer"
				},
				"total": {
					"type": "string"
				},
				"by_payment_mode": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/response.PaymentModeTotalsResponse"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/v1",
	Schemes:		  []string{},
	Title:			"POS Billing Counter API",
	Description:	  "Cart, hold/resume, payment and daily report endpoints of the billing counter.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
