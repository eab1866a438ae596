package translator

// Grammar is the formal description of the language, shown next to the editor.
const Grammar = `Program    = "Start" Array...Array Assignment "End"
Array      = "Array" number...number
number     = real | integer | complex
Assignment = variable "=" expression
expression = block1 ["+" | "-"] ... block1
block1     = block2 ["*" | "/"] ... block2
block2     = block3 "**" ... block3
block3     = ["+" | "-"] (variable | real | "[" expression "]")   (depth <= 2)
variable   = letter letter digit digit digit
complex    = real "," real
real       = integer "." integer
integer    = digit...digit
letter     = "A" | "B" | ... | "Z" | "a" | ... | "z"
digit      = "0" | "1" | ... | "7"
`
