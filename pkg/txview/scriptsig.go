package txview

// ScriptSig is a zero-copy view over an input's CompactInt-prefixed
// scriptSig, including the length prefix itself.
type ScriptSig []byte
