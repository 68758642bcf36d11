// Package openapi exports form descriptors as OpenAPI 3 component schemas so
// the same model types can be documented or consumed by schema-driven
// tooling. Field labels become property titles and the display order is kept
// in the x-formgen extension, since JSON objects do not preserve key order.
package openapi
