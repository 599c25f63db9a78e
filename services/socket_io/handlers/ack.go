package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// extractAck splits a trailing acknowledgment callback off the raw socket.io
// args. Clients that emit without a callback just get events; clients that
// pass one receive {success, ...} through it.
func extractAck(args []interface{}) (func(...interface{}), []interface{}) {
	if len(args) == 0 {
		return nil, args
	}
	if ack, ok := args[len(args)-1].(func(...interface{})); ok {
		return ack, args[:len(args)-1]
	}
	return nil, args
}

// ackSuccess answers the action's callback with {success:true} plus any
// extra data. No-op without a callback; success is observable through the
// broadcast events either way.
func ackSuccess(ack func(...interface{}), data gin.H) {
	if ack == nil {
		return
	}
	out := gin.H{"success": true}
	for k, v := range data {
		out[k] = v
	}
	ack(out)
}

// ackError surfaces a recoverable failure to the originating client only:
// through the callback when one was given, else as an error event (the
// fallback the client's error toast listens for).
func ackError(client *socket.Socket, ack func(...interface{}), err error) {
	if ack != nil {
		ack(gin.H{"success": false, "error": err.Error()})
		return
	}
	client.Emit("error", gin.H{"error": err.Error()})
}
