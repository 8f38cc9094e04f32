package chain

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// revertCode is the JSON-RPC error code nodes use for a reverted eth_call.
const revertCode = 3

// IsRevert reports whether err came back from the node as a failed execution
// rather than from the transport. Other JSON-RPC errors (rate limits, missing
// state, unknown block) are not reverts.
func IsRevert(err error) bool {
	if err == nil {
		return false
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertCode {
		return true
	}

	if _, ok := revertData(err); ok {
		return true
	}

	if errors.Is(err, bind.ErrNoCode) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "execution reverted") || strings.HasPrefix(msg, "abi: ")
}

// RevertReason turns a failed call or transaction error into a readable reason:
// a decoded custom error such as "InsufficientPayment(required=2, provided=1)",
// a Solidity Error(string) message, or the transport message itself.
func RevertReason(contractABI abi.ABI, err error) string {
	if err == nil {
		return ""
	}

	if data, ok := revertData(err); ok {
		if name, args, found := matchCustomError(contractABI, data); found {
			if args == "" {
				return name
			}
			return fmt.Sprintf("%s(%s)", name, args)
		}

		if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
			return reason
		}
	}

	return err.Error()
}

// RevertName returns only the custom error name, if one could be decoded.
func RevertName(contractABI abi.ABI, err error) string {
	data, ok := revertData(err)
	if !ok {
		return ""
	}

	name, _, _ := matchCustomError(contractABI, data)
	return name
}

func revertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}

	switch v := dataErr.ErrorData().(type) {
	case string:
		data, decodeErr := hexutil.Decode(v)
		if decodeErr != nil {
			return nil, false
		}
		return data, true
	case []byte:
		return v, true
	default:
		return nil, false
	}
}

func matchCustomError(contractABI abi.ABI, data []byte) (name string, args string, found bool) {
	if len(data) < 4 {
		return "", "", false
	}

	for _, abiErr := range contractABI.Errors {
		if !bytes.Equal(abiErr.ID[:4], data[:4]) {
			continue
		}

		values, unpackErr := abiErr.Inputs.Unpack(data[4:])
		if unpackErr != nil {
			return abiErr.Name, "", true
		}

		parts := make([]string, 0, len(values))
		for i, v := range values {
			parts = append(parts, fmt.Sprintf("%s=%v", abiErr.Inputs[i].Name, v))
		}
		return abiErr.Name, strings.Join(parts, ", "), true
	}

	return "", "", false
}
