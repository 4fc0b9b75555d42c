// Package entities provides the core domain entities of the SDK: validation
// rules, property declarations, and the declaration table a model type is
// built from. These are general-purpose types used across all SDK operations.
package entities
