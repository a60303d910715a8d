// Package model defines the provider-agnostic abstraction for the language
// models whose calls the tracker records.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Report provider token usage so cost estimates can be reconciled
//   - Facilitate lightweight mocking for tests and examples (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so instrumented code remains decoupled from vendor SDKs.
package model
