package preset

import "maps"

// builtinModules are the modules Node ships with, matching
// require('module').builtinModules on the Node releases Electron 11-18 embed.
var builtinModules = []string{
	"_http_agent", "_http_client", "_http_common", "_http_incoming", "_http_outgoing", "_http_server",
	"_stream_duplex", "_stream_passthrough", "_stream_readable", "_stream_transform", "_stream_wrap", "_stream_writable",
	"_tls_common", "_tls_wrap",
	"assert", "assert/strict", "async_hooks", "buffer", "child_process", "cluster", "console", "constants",
	"crypto", "dgram", "diagnostics_channel", "dns", "dns/promises", "domain", "events", "fs", "fs/promises",
	"http", "http2", "https", "inspector", "module", "net", "os", "path", "path/posix", "path/win32",
	"perf_hooks", "process", "punycode", "querystring", "readline", "repl", "stream", "stream/consumers",
	"stream/promises", "stream/web", "string_decoder", "sys", "timers", "timers/promises", "tls",
	"trace_events", "tty", "url", "util", "util/types", "v8", "vm", "wasi", "worker_threads", "zlib",
}

// builtinExternals lists every builtin module both bare and with the node: prefix.
func builtinExternals() []string {
	externals := make([]string, 0, len(builtinModules)*2)
	for _, m := range builtinModules {
		externals = append(externals, m, "node:"+m)
	}
	return externals
}

// withProcessEnvDefines adds the process.env substitutions, keeping any value
// the user already defined for the same key.
func withProcessEnvDefines(user map[string]string) map[string]string {
	define := map[string]string{
		"process.env":            "process.env",
		"global.process.env":     "global.process.env",
		"globalThis.process.env": "globalThis.process.env",
	}
	maps.Copy(define, user)
	return define
}
