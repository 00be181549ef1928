package fuzztests

import (
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

// addCorpusSeeds feeds the harness a spread of valid and pathological Lua
// shapes so coverage starts somewhere useful.
func addCorpusSeeds(f *testing.F) {
	seeds := []string{
		"",
		"function f() end\n",
		"local function helper(a, b) return a + b end\n",
		"function M.utils:reset(...) end\n",
		"-- @brief summary\n-- @param x number\nfunction g(x) end\n",
		"--[[ long\ncomment ]]\nM.h = function() end\n",
		"local s = \"unterminated\n",
		"[==[ long string with ]] inside ]==]\n",
		"end end end\n",
		"function a() function b() function c() end end end\n",
		"-- @description\n-- \\code{t = { { } }}\nfunction d() end\n",
		"while x do for i = 1, 10 do repeat until y end end\n",
		"function broken(\n",
		"0x1p-5 .5 1..2 ... ::label::\n",
	}
	for _, s := range seeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
