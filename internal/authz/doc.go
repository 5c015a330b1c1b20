// Curator - Content Merchandising Preview and Recommendation Simulation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curator

/*
Package authz enforces module permissions with Casbin RBAC.

The role comes from the "role" claim of an HS256 bearer JWT issued by the
identity provider and verified with Config.JWTSecret. Requests without a
token get DefaultRole; a bad or expired token is rejected with 401. The
X-Curator-Role header is read only when TrustRoleHeader is set, which is
meant for local development. Policies grant a role a permission on a
module:

	p, content_manager, preview, update
	p, content_creator, carousel, create

Modules are "preview" (sessions, catalog, candidates) and "carousel"
(routes and promotion). Permissions are read, create, update, and delete;
"*" matches any module or permission.

The model and default policy are embedded. Both can be replaced by files
through Config. Decisions are cached per (role, module, permission) in a
TTL LRU and the cache is flushed whenever policy changes.
*/
package authz
