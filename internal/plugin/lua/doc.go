// Package lua runs the user's init script and exposes the commands it
// registers.
//
// The script runs in a sandboxed gopher-lua state with only the base,
// table, string and math libraries open. It reaches the browser through
// the ripcurl module, available both as a global and through require:
//
//	ripcurl.command{
//	    name = "ddg",
//	    abbrev = "d",
//	    handler = function(args)
//	        ripcurl.open("https://duckduckgo.com/?q=" .. table.concat(args, "+"))
//	        return true
//	    end,
//	}
//
// Handlers run on the UI goroutine through Command.Invoke. During the call
// the module functions act on the Host passed to Invoke:
//
//	ripcurl.open(uri)            load uri in the current window
//	ripcurl.winopen(uri)         open uri in a new window
//	ripcurl.notify(msg[, level]) show msg in the input bar
//	ripcurl.uri()                current window's URI
//
// A handler returning true closes the input bar.
package lua
