package identifier

// Dictionaries are stored capitalized where the word is a proper noun;
// Humanized lowercases every word.

var names = []string{
	"Aaron", "Abigail", "Adam", "Adrian", "Aiden", "Alan", "Albert", "Alex",
	"Alice", "Amanda", "Amelia", "Andrea", "Andrew", "Angela", "Anna", "Anthony",
	"Arthur", "Ashley", "Audrey", "Austin", "Barbara", "Beatrice", "Benjamin", "Bernard",
	"Beth", "Bianca", "Bruno", "Caleb", "Camila", "Carla", "Carlos", "Caroline",
	"Catherine", "Cecilia", "Charles", "Chloe", "Christian", "Claire", "Clara", "Daniel",
	"David", "Debora", "Diana", "Diego", "Dominic", "Dylan", "Edgar", "Eduardo",
	"Elena", "Elias", "Elisa", "Emily", "Emma", "Eric", "Ethan", "Eva",
	"Felipe", "Fernanda", "Fiona", "Francis", "Gabriel", "Gabriela", "George", "Grace",
	"Gustavo", "Hannah", "Harry", "Hector", "Helena", "Henry", "Hugo", "Ian",
	"Irene", "Isaac", "Isabel", "Ivan", "Jack", "Jacob", "James", "Jane",
	"Jasmine", "Joana", "Joel", "John", "Jonas", "Joseph", "Julia", "Julian",
	"Karen", "Kevin", "Laura", "Leonardo", "Lia", "Lilian", "Linda", "Lucas",
	"Lucia", "Luna", "Marcos", "Maria", "Marina", "Mario", "Martin", "Matheus",
	"Maya", "Michael", "Miguel", "Monica", "Nadia", "Natalia", "Nathan", "Nicole",
	"Nina", "Noah", "Oliver", "Olivia", "Oscar", "Pablo", "Patricia", "Paula",
	"Pedro", "Rafael", "Rebecca", "Renata", "Ricardo", "Rita", "Robert", "Rosa",
	"Samuel", "Sandra", "Sara", "Sergio", "Simone", "Sofia", "Stella", "Thiago",
	"Thomas", "Valentina", "Vanessa", "Victor", "Vivian", "William", "Yara", "Zoe",
}

var adjectives = []string{
	"able", "adorable", "agile", "amazing", "ancient", "angry", "anxious", "aquatic",
	"awkward", "bashful", "bitter", "black", "blue", "bold", "brave", "breezy",
	"brief", "bright", "brisk", "broad", "busy", "calm", "careful", "cheerful",
	"chilly", "clever", "cloudy", "clumsy", "colossal", "cool", "cosmic", "crazy",
	"crisp", "curious", "cute", "daring", "dark", "dizzy", "eager", "early",
	"electric", "elegant", "empty", "energetic", "fancy", "fast", "fierce", "fluffy",
	"foggy", "fresh", "friendly", "funny", "fuzzy", "gentle", "giant", "glad",
	"gloomy", "golden", "graceful", "grumpy", "happy", "hasty", "healthy", "helpful",
	"hidden", "honest", "hungry", "icy", "idle", "jolly", "jumpy", "kind",
	"large", "lazy", "little", "lively", "lonely", "loud", "lucky", "magic",
	"mellow", "mighty", "misty", "modern", "muddy", "narrow", "neat", "nervous",
	"nice", "noisy", "odd", "old", "orange", "patient", "plain", "polite",
	"proud", "purple", "quick", "quiet", "rapid", "rare", "red", "rich",
	"rough", "round", "rusty", "sad", "salty", "shiny", "short", "shy",
	"silent", "silly", "silver", "slim", "slow", "small", "smart", "smooth",
	"soft", "sour", "spicy", "steady", "stormy", "strong", "sunny", "sweet",
	"swift", "tall", "tame", "tender", "tiny", "tired", "tough", "vast",
	"wacky", "warm", "wide", "wild", "wise", "witty", "yellow", "young",
}

var animals = []string{
	"aardvark", "albatross", "alligator", "alpaca", "anaconda", "ant", "antelope", "armadillo",
	"baboon", "badger", "barracuda", "bat", "bear", "beaver", "bee", "beetle",
	"bison", "boar", "buffalo", "butterfly", "camel", "capybara", "caribou", "cat",
	"caterpillar", "cheetah", "chicken", "chimpanzee", "chinchilla", "cobra", "condor", "cougar",
	"coyote", "crab", "crane", "crocodile", "crow", "deer", "dingo", "dolphin",
	"donkey", "dove", "dragonfly", "duck", "eagle", "eel", "elephant", "elk",
	"emu", "falcon", "ferret", "finch", "flamingo", "fox", "frog", "gazelle",
	"gecko", "gerbil", "giraffe", "goat", "goose", "gorilla", "grasshopper", "hamster",
	"hare", "hawk", "hedgehog", "heron", "hippopotamus", "hornet", "horse", "hummingbird",
	"hyena", "ibis", "iguana", "impala", "jackal", "jaguar", "jellyfish", "kangaroo",
	"koala", "lark", "lemur", "leopard", "lion", "lizard", "llama", "lobster",
	"lynx", "macaw", "manatee", "meerkat", "mole", "mongoose", "monkey", "moose",
	"mosquito", "moth", "mouse", "narwhal", "newt", "octopus", "opossum", "ostrich",
	"otter", "owl", "ox", "panda", "panther", "parrot", "peacock", "pelican",
	"penguin", "pig", "pigeon", "porcupine", "puma", "rabbit", "raccoon", "raven",
	"reindeer", "rhinoceros", "salamander", "salmon", "scorpion", "seal", "shark", "sheep",
	"skunk", "sloth", "snail", "snake", "sparrow", "spider", "squid", "squirrel",
	"stork", "swan", "tapir", "tiger", "toucan", "turtle", "walrus", "wasp",
	"weasel", "whale", "wolf", "wombat", "woodpecker", "yak", "zebra",
}
