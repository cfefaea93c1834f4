package extract

// matchBrace 从 open 位置（必须是 '{'）开始按字符计数嵌套深度，
// 返回使深度回到 0 的 '}' 的下标；找不到时返回 -1
//
// 字符串、模板字符串、正则字面量和注释中的花括号不计入深度
func matchBrace(src string, open int) int {
	if open < 0 || open >= len(src) || src[open] != '{' {
		return -1
	}
	depth := 0
	i := open
	for i < len(src) {
		switch ch := src[i]; ch {
		case '{':
			depth++
			i++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
			i++
		case '"', '\'', '`':
			i = skipQuoted(src, i, ch)
		case '/':
			switch {
			case i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
				i = skipComment(src, i)
			case regexAllowed(src, i):
				i = skipRegex(src, i)
			default:
				i++
			}
		default:
			i++
		}
	}
	return -1
}

// skipQuoted 跳过以 quote 开始的字符串，返回结束引号之后的位置
// 未闭合时返回 len(src)
func skipQuoted(src string, start int, quote byte) int {
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			// 普通字符串不能跨行，视为结束以免吞掉后续代码
			if quote != '`' {
				return i
			}
		}
		i++
	}
	return len(src)
}

// skipComment 在 '/' 处尝试跳过行注释或块注释；不是注释时前进一个字符
func skipComment(src string, start int) int {
	if start+1 >= len(src) {
		return start + 1
	}
	switch src[start+1] {
	case '/':
		for i := start + 2; i < len(src); i++ {
			if src[i] == '\n' {
				return i
			}
		}
		return len(src)
	case '*':
		for i := start + 2; i+1 < len(src); i++ {
			if src[i] == '*' && src[i+1] == '/' {
				return i + 2
			}
		}
		return len(src)
	}
	return start + 1
}

// regexOperators 出现在这些字符之后的 '/' 开始一个正则字面量，而不是除号
const regexOperators = "(,=:[!&|?{};+-*%<>~^"

// regexKeywords 之后的 '/' 同样开始正则字面量
var regexKeywords = map[string]struct{}{
	"return": {}, "typeof": {}, "case": {}, "in": {}, "of": {},
	"delete": {}, "void": {}, "throw": {}, "new": {}, "instanceof": {},
}

// regexAllowed 根据 start 之前最近的非空白字符判断 '/' 是否开始正则字面量
func regexAllowed(src string, start int) bool {
	i := start - 1
	for i >= 0 && (src[i] == ' ' || src[i] == '\t' || src[i] == '\r') {
		i--
	}
	if i < 0 || src[i] == '\n' {
		return true
	}
	if isIdentByte(src[i]) {
		end := i + 1
		for i >= 0 && isIdentByte(src[i]) {
			i--
		}
		_, ok := regexKeywords[src[i+1:end]]
		return ok
	}
	for k := 0; k < len(regexOperators); k++ {
		if src[i] == regexOperators[k] {
			return true
		}
	}
	return false
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// skipRegex 跳过以 '/' 开始的正则字面量，处理转义与字符类 [...]
// 返回结束 '/' 之后的位置；遇到换行视为未闭合并停在换行处
func skipRegex(src string, start int) int {
	inClass := false
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				return i + 1
			}
		case '\n':
			return i
		}
		i++
	}
	return len(src)
}
