// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// General API information for swag. Regenerate docs/ with:
//
//	swag init -g cmd/server/docs.go -o docs
//
// @title Marquee API
// @version 1.0
// @description Content-based movie recommendations.
// @description
// @description Each movie is encoded as one-hot genre columns plus its runtime in
// @description minutes, every column is standardized to zero mean and unit variance,
// @description and recommendations are the exact nearest neighbors of the query title
// @description by Euclidean distance. Ties are broken by catalog order.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Health probes are not rate limited.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "TITLE_NOT_FOUND",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Catalog
// @tag.description Browse the movie catalog
//
// @tag.name Recommendations
// @tag.description Nearest-neighbor recommendations and model statistics
package main
