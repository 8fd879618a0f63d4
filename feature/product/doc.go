// Package product implements the product catalog CRUD surface.
//
// Listings support pagination, name/description search and category/price
// filters. Creation, updates and deletion require the admin role; reads only
// require authentication. Products carry an optional external ID linking them
// to records imported by the sync feature.
package product
