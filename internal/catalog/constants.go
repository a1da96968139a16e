package catalog

// Greeting returned by the hello endpoint
const Greeting = "hello from server!"

// HandSize is the number of cards in the mock hand
const HandSize = 10

// Card text templates
const (
	CardNameFormat        = "Card %d"
	CardDescriptionFormat = "Description %d"
)

// LoremIpsum is the long description used to exercise description scrolling
const LoremIpsum = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Aliquam sapien neque, viverra ac augue sed, hendrerit tincidunt nunc. Etiam interdum mollis dolor. Cras vehicula dictum massa sit amet finibus. Duis id gravida urna, in ullamcorper libero. Mauris volutpat nisi id auctor tempor. Vivamus viverra nisi et sapien porttitor, nec auctor nisi pellentesque. Aliquam sed purus arcu. Ut eget ornare ex. Cras eu enim tellus. Aenean semper felis ac enim dictum mattis at quis risus. Curabitur vel leo a dolor tristique aliquet in in dolor."
