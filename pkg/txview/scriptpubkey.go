package txview

// ScriptPubkey is a zero-copy view over an output's CompactInt-prefixed
// scriptPubkey, including the length prefix itself.
type ScriptPubkey []byte
