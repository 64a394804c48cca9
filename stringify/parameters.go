package stringify

// IndentationSize defines the amount of spaces that are used to indent nested structures.
const IndentationSize = 4
