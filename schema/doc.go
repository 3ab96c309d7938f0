// Package schema validates TON documents against declarative schema
// descriptors.
//
// A descriptor is a nested key/value structure:
//
//	{
//	    type: "object"
//	    required: ["name"]
//	    properties: {
//	        name: { type: "string", minLength: 1 }
//	        tags: { type: "array", items: { type: "string" }, maxItems: 10 }
//	    }
//	}
//
// Descriptors are built from generic maps with [FromMap], from YAML or
// JSON with [LoadYAML] and from TON documents with [FromNode]. [Validate]
// walks a document against a descriptor and collects every violation in a
// [Result] rather than stopping at the first.
//
// Type names which are not recognized pass without any check, and
// properties which the descriptor does not mention are not visited.
package schema
