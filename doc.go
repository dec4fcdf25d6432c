// Package budget implements a chat-driven personal budgeting assistant: it
// interprets free-text command lines (tokenize, match against an ordered
// chain of grammars, execute), and keeps per-category spending budgets and
// transaction ledgers in a key-value store.
//
// The package is transport-agnostic: the console REPL and the Telegram bot in
// cmd/ both feed raw lines to a Dispatcher and relay the resulting messages.
package budget
