// Package walrus implements the client side of the Walrus line-command protocol:
// UTF-8 text commands and responses carried in length-prefixed binary frames over
// TCP, with an optional shared-secret AUTH exchange at the start of a connection.
package walrus
