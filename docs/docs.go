// Package docs registers the OpenAPI description served under /api/swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {"description": "{{escape .Description}}", "title": "{{.Title}}", "contact": {}, "version": "{{.Version}}"},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"securityDefinitions": {"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}},
	"paths": {
		"/users/me": {
			"get": {"tags": ["users"], "summary": "Current user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/users": {
			"get": {"tags": ["users"], "summary": "List user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["users"], "summary": "Create user", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/users/{uuid}": {
			"get": {"tags": ["users"], "summary": "Retrieve user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["users"], "summary": "Replace user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["users"], "summary": "Update user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["users"], "summary": "Delete user", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/laboratories": {
			"get": {"tags": ["reference"], "summary": "List laboratory", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reference"], "summary": "Create laboratory", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/laboratories/{uuid}": {
			"get": {"tags": ["reference"], "summary": "Retrieve laboratory", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reference"], "summary": "Replace laboratory", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reference"], "summary": "Update laboratory", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reference"], "summary": "Delete laboratory", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagent-types": {
			"get": {"tags": ["reference"], "summary": "List reagent type", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reference"], "summary": "Create reagent type", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagent-types/{uuid}": {
			"get": {"tags": ["reference"], "summary": "Retrieve reagent type", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reference"], "summary": "Replace reagent type", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reference"], "summary": "Update reagent type", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reference"], "summary": "Delete reagent type", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/producers": {
			"get": {"tags": ["reference"], "summary": "List producer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reference"], "summary": "Create producer", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/producers/{uuid}": {
			"get": {"tags": ["reference"], "summary": "Retrieve producer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reference"], "summary": "Replace producer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reference"], "summary": "Update producer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reference"], "summary": "Delete producer", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/concentrations": {
			"get": {"tags": ["reference"], "summary": "List concentration", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reference"], "summary": "Create concentration", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/concentrations/{uuid}": {
			"get": {"tags": ["reference"], "summary": "Retrieve concentration", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reference"], "summary": "Replace concentration", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reference"], "summary": "Update concentration", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reference"], "summary": "Delete concentration", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/units": {
			"get": {"tags": ["reference"], "summary": "List unit", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reference"], "summary": "Create unit", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/units/{uuid}": {
			"get": {"tags": ["reference"], "summary": "Retrieve unit", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reference"], "summary": "Replace unit", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reference"], "summary": "Update unit", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reference"], "summary": "Delete unit", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/purity-qualities": {
			"get": {"tags": ["reference"], "summary": "List purity quality", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reference"], "summary": "Create purity quality", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/purity-qualities/{uuid}": {
			"get": {"tags": ["reference"], "summary": "Retrieve purity quality", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reference"], "summary": "Replace purity quality", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reference"], "summary": "Update purity quality", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reference"], "summary": "Delete purity quality", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/storage-conditions": {
			"get": {"tags": ["reference"], "summary": "List storage condition", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reference"], "summary": "Create storage condition", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/storage-conditions/{uuid}": {
			"get": {"tags": ["reference"], "summary": "Retrieve storage condition", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reference"], "summary": "Replace storage condition", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reference"], "summary": "Update storage condition", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reference"], "summary": "Delete storage condition", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/pictograms": {
			"get": {"tags": ["hazard"], "summary": "List pictogram", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["hazard"], "summary": "Create pictogram", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/pictograms/{uuid}": {
			"get": {"tags": ["hazard"], "summary": "Retrieve pictogram", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["hazard"], "summary": "Replace pictogram", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["hazard"], "summary": "Update pictogram", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["hazard"], "summary": "Delete pictogram", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/clp-classifications": {
			"get": {"tags": ["hazard"], "summary": "List CLP classification", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["hazard"], "summary": "Create CLP classification", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/clp-classifications/{uuid}": {
			"get": {"tags": ["hazard"], "summary": "Retrieve CLP classification", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["hazard"], "summary": "Replace CLP classification", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["hazard"], "summary": "Update CLP classification", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["hazard"], "summary": "Delete CLP classification", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/hazard-statements": {
			"get": {"tags": ["hazard"], "summary": "List hazard statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["hazard"], "summary": "Create hazard statement", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/hazard-statements/{uuid}": {
			"get": {"tags": ["hazard"], "summary": "Retrieve hazard statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["hazard"], "summary": "Replace hazard statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["hazard"], "summary": "Update hazard statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["hazard"], "summary": "Delete hazard statement", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/precautionary-statements": {
			"get": {"tags": ["hazard"], "summary": "List precautionary statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["hazard"], "summary": "Create precautionary statement", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/precautionary-statements/{uuid}": {
			"get": {"tags": ["hazard"], "summary": "Retrieve precautionary statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["hazard"], "summary": "Replace precautionary statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["hazard"], "summary": "Update precautionary statement", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["hazard"], "summary": "Delete precautionary statement", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagents/cas": {
			"get": {"tags": ["reagents"], "summary": "Look up a CAS number", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagents": {
			"get": {"tags": ["reagents"], "summary": "List reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reagents"], "summary": "Create reagent", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagents/{uuid}": {
			"get": {"tags": ["reagents"], "summary": "Retrieve reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["reagents"], "summary": "Replace reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["reagents"], "summary": "Update reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reagents"], "summary": "Delete reagent", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/projects": {
			"get": {"tags": ["projects"], "summary": "List project procedure", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["projects"], "summary": "Create project procedure", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/projects/{uuid}": {
			"get": {"tags": ["projects"], "summary": "Retrieve project procedure", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["projects"], "summary": "Replace project procedure", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["projects"], "summary": "Update project procedure", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["projects"], "summary": "Delete project procedure", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/personal-reagents/me": {
			"get": {"tags": ["personal-reagents"], "summary": "Own stock", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/personal-reagents/report": {
			"get": {"tags": ["personal-reagents"], "summary": "Stock report (pdf)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/personal-reagents/{uuid}/usage-record": {
			"post": {"tags": ["personal-reagents"], "summary": "Usage record sheet (pdf)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/personal-reagents": {
			"get": {"tags": ["personal-reagents"], "summary": "List personal reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["personal-reagents"], "summary": "Create personal reagent", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/personal-reagents/{uuid}": {
			"get": {"tags": ["personal-reagents"], "summary": "Retrieve personal reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"put": {"tags": ["personal-reagents"], "summary": "Replace personal reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"patch": {"tags": ["personal-reagents"], "summary": "Update personal reagent", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["personal-reagents"], "summary": "Delete personal reagent", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagent-requests": {
			"get": {"tags": ["reagent-requests"], "summary": "Requests the caller takes part in", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"post": {"tags": ["reagent-requests"], "summary": "Request a personal reagent", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagent-requests/me": {
			"get": {"tags": ["reagent-requests"], "summary": "Requests made by the caller", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagent-requests/notifications": {
			"get": {"tags": ["reagent-requests"], "summary": "Awaiting requests for the caller's stock", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagent-requests/{uuid}": {
			"get": {"tags": ["reagent-requests"], "summary": "Retrieve request", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}},
			"delete": {"tags": ["reagent-requests"], "summary": "Withdraw request", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/reagent-requests/{uuid}/status": {
			"put": {"tags": ["reagent-requests"], "summary": "Approve or reject", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		},
		"/history/{entity}/{uuid}": {
			"get": {"tags": ["history"], "summary": "Change history of a record", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}, "401": {"description": "Unauthenticated"}, "403": {"description": "Forbidden"}}}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/api/v1",
	Schemes:		  []string{},
	Title:			"Reagent tracker API",
	Description:	  "Reagent inventory: catalogue, personal stock, transfer requests and history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
