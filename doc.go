// Package abicodec implements the contract ABI encoding used for Ethereum
// call data and return data.
//
// The codec turns typed arguments into the head/tail wire format and turns
// bytes returned by a remote node back into typed Go values:
//   - Static values (integers, address, bool, bytesN and arrays or tuples of
//     them) are written in place as one or more 32-byte words
//   - Dynamic values (bytes, string, T[] and anything containing them) are
//     written to a tail region and referenced by a byte offset
//   - Offsets are always relative to the start of the enclosing region
//
// # Basic Usage
//
// Parse types, then encode or decode a parameter list:
//
//	types, err := abicodec.ParseTypes("address", "uint256[]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := abicodec.EncodeParameters(types, []any{
//	    common.HexToAddress("0xc285289346689ee7cd63e4bb1a3b40f5f6e7973c"),
//	    []int{1, 2, 3},
//	})
//
//	values, err := abicodec.DecodeParameters(types, data)
//
// # Type Descriptors
//
// ParamType is a closed set of variants: AddressType, BoolType, UIntType,
// IntType, FixedBytesType, BytesType, StringType, FixedArrayType,
// DynamicArrayType and TupleType. ParseType builds them from type names such
// as "uint256[2][]"; tuple components come from ABI JSON descriptors
// (Argument) or from inline syntax such as "(address,bytes)".
//
// # Decoded Values
//
// Decoding produces *big.Int for integers, common.Address, bool, []byte for
// bytes and bytesN, string, []any for arrays and Tuple for tuples.
//
// # Untrusted Input
//
// Decoding never reads out of bounds and never allocates based on a length,
// offset or count before checking it against the input size. Violations
// fail with ErrBufferOverrun.
//
// # Methods
//
// Method adds function selectors on top of the codec:
//
//	transfer := abicodec.MustParseSignature("transfer(address,uint256)(bool)")
//	callData, err := transfer.EncodeCall(recipient, big.NewInt(1000))
//	result, err := transfer.DecodeOutputs(returnData)
package abicodec
