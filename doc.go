// Package gostreamsx provides supplementary operations for channel-based streams of elements.
// It is a companion to the gostreams pipeline model: streams are lazy producers that
// deliver elements one at a time, and every operation here either derives a new producer
// from an existing one, or drives a producer to completion and resolves a single value.
//
// Streams are represented by ProducerFuncs. An initial producer is constructed from slices
// or channels; fallible streams carry their errors in-band as Try elements.
//
// Intermediate operations (deduplication, filter-mapping, fusing after failure, metering)
// return new producers that preserve the source's element order. Terminal operations
// (first/nth element, folding with a mutable accumulator, collecting with a limit) consume
// a producer and return a resolved value together with an error.
//
// Stream operations receive a context.CancelCauseFunc. Calling the cancel function will
// cancel the entire stream, thus short-circuiting processing elements. Terminal operations
// use well-known sentinel causes to stop consuming early without reporting a failure.
// Producer implementations must be prepared to be canceled at any time by checking the
// provided context.Context.
//
// Streams are always lazy, meaning that producers will produce a new element only after a
// downstream producer or consumer has consumed the previous element. An operation consumes
// its source only as far as it needs to produce its own result.
package gostreamsx
