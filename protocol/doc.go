// Package protocol implements the socket.io packet wire format:
//
//	<packet type>[<# of binary attachments>-][<namespace>,][<acknowledgment id>][JSON-stringified payload without binary]
//	[<binary attachment>]
//
// or as a real example:
//
//	51-/admin,456["project:delete",{"_placeholder":true,"num":0}]
//
// The text frame never carries attachment bytes. A binary event or ack
// announces how many attachments follow, the JSON payload holds
// placeholder markers, and the attachments themselves arrive as raw
// binary frames right after the text frame, in placeholder order. The
// codec only does the bookkeeping; the transport owns the sequencing.
package protocol
